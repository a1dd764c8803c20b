package style

import "fmt"

// PixelFormat tags the layout of an atlas pixel buffer. Values match
// the raylib PixelFormat enumeration so embedded images stay readable
// by raygui loaders.
type PixelFormat int32

const (
	PixelFormatGrayscale PixelFormat = 1 // 1 byte per pixel
	PixelFormatGrayAlpha PixelFormat = 2 // 2 bytes per pixel
	PixelFormatRGBA8     PixelFormat = 7 // 4 bytes per pixel
)

// BytesPerPixel returns the storage size of one pixel, or 0 for an
// unknown format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatGrayscale:
		return 1
	case PixelFormatGrayAlpha:
		return 2
	case PixelFormatRGBA8:
		return 4
	default:
		return 0
	}
}

// Image is an owned pixel buffer, typically the font atlas.
type Image struct {
	Width  int32
	Height int32
	Format PixelFormat
	Pixels []byte
}

// PixelDataSize returns the expected byte length of the pixel buffer.
func (im Image) PixelDataSize() int {
	return int(im.Width) * int(im.Height) * im.Format.BytesPerPixel()
}

// RectF is a sub-rectangle of the atlas, in pixels.
type RectF struct {
	X, Y, Width, Height float32
}

// Glyph is one character's atlas rectangle plus rendering metrics.
type Glyph struct {
	Rect     RectF
	Value    int32 // unicode codepoint
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
}

// Font is the optional embedded bitmap font: atlas image, base size
// and glyph table. It is a plain value aggregate; copying it copies
// the glyph slice header but callers that need isolation should use
// Clone.
type Font struct {
	BaseSize int32
	Atlas    Image
	Glyphs   []Glyph
}

// Clone returns a deep copy of the font.
func (f *Font) Clone() *Font {
	if f == nil {
		return nil
	}
	out := &Font{BaseSize: f.BaseSize, Atlas: f.Atlas}
	out.Atlas.Pixels = append([]byte(nil), f.Atlas.Pixels...)
	out.Glyphs = append([]Glyph(nil), f.Glyphs...)
	return out
}

// ToGrayAlpha converts the atlas to the 2-byte gray+alpha format used
// for embedding. Color information is not needed for glyph masks, so
// RGBA atlases are reduced with the usual luminance weights;
// grayscale atlases gain an opaque alpha channel. A gray+alpha atlas
// is returned unchanged.
func (f *Font) ToGrayAlpha() error {
	im := &f.Atlas
	if len(im.Pixels) != im.PixelDataSize() {
		return fmt.Errorf("style: atlas pixel buffer is %d bytes, want %d", len(im.Pixels), im.PixelDataSize())
	}

	n := int(im.Width) * int(im.Height)
	switch im.Format {
	case PixelFormatGrayAlpha:
		return nil
	case PixelFormatGrayscale:
		out := make([]byte, n*2)
		for i := 0; i < n; i++ {
			out[i*2] = im.Pixels[i]
			out[i*2+1] = 0xff
		}
		im.Pixels = out
	case PixelFormatRGBA8:
		out := make([]byte, n*2)
		for i := 0; i < n; i++ {
			r := uint32(im.Pixels[i*4])
			g := uint32(im.Pixels[i*4+1])
			b := uint32(im.Pixels[i*4+2])
			// Rec. 601 luma, same weights raylib uses for the
			// grayscale reduction.
			out[i*2] = byte((r*299 + g*587 + b*114) / 1000)
			out[i*2+1] = im.Pixels[i*4+3]
		}
		im.Pixels = out
	default:
		return fmt.Errorf("style: unsupported atlas pixel format %d", im.Format)
	}
	im.Format = PixelFormatGrayAlpha
	return nil
}
