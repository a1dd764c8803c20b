package style

// Built-in baseline: the raygui light style. Values are kept as raw
// 0xRRGGBBAA words; non-color slots hold plain integers.
var defaultBaseline = [NumProps]uint32{
	BorderColorNormal:   0x838383ff,
	BaseColorNormal:     0xc9c9c9ff,
	TextColorNormal:     0x686868ff,
	BorderColorFocused:  0x5bb2d9ff,
	BaseColorFocused:    0xc9effeff,
	TextColorFocused:    0x6c9bbcff,
	BorderColorPressed:  0x0492c7ff,
	BaseColorPressed:    0x97e8ffff,
	TextColorPressed:    0x368bafff,
	BorderColorDisabled: 0xb5c1c2ff,
	BaseColorDisabled:   0xe6e9e9ff,
	TextColorDisabled:   0xaeb7b8ff,
	BorderWidth:         1,
	TextPadding:         0,
	TextAlignment:       0,
	PropReserved:        0,
	TextSize:            10,
	TextSpacing:         1,
	LineColor:           0x90abb5ff,
	BackgroundColor:     0xf5f5f5ff,
}

// DefaultValue returns the built-in baseline value for a property.
// Every control starts from the DEFAULT row, so the baseline is the
// same for all of them.
func DefaultValue(p Property) int32 {
	if !p.Valid() {
		panic("style: property out of range")
	}
	return int32(defaultBaseline[p])
}
