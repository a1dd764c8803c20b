package style

// Color property values pack an RGBA quadruplet into 32 bits with the
// red channel in the most significant byte: 0xRRGGBBAA.

// PackColor packs four channel bytes into a property value.
func PackColor(r, g, b, a uint8) int32 {
	return int32(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// UnpackColor splits a property value into its channel bytes.
func UnpackColor(v int32) (r, g, b, a uint8) {
	u := uint32(v)
	return uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)
}
