// Package rlfont turns a decoded style.Font into a live raylib Font.
// It is the only package here that touches the GPU; the codecs stay
// pure so they stay testable without a window.
//
// Ownership: the returned raylib font holds a texture that must be
// freed with Release before the style's font is replaced or dropped,
// or the texture leaks for the life of the GL context.
package rlfont

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/rgstyle/style"
)

// Upload converts f into a raylib font, uploading the atlas as a
// texture. Call after rl.InitWindow. A failed texture upload is
// recoverable by design: callers should fall back to the default gui
// font rather than abort.
func Upload(f *style.Font) (rl.Font, error) {
	if f == nil || len(f.Atlas.Pixels) == 0 {
		return rl.Font{}, errors.New("rlfont: no atlas pixels")
	}
	format, err := pixelFormat(f.Atlas.Format)
	if err != nil {
		return rl.Font{}, err
	}
	if len(f.Atlas.Pixels) != f.Atlas.PixelDataSize() {
		return rl.Font{}, fmt.Errorf("rlfont: atlas pixel buffer is %d bytes, want %d",
			len(f.Atlas.Pixels), f.Atlas.PixelDataSize())
	}

	img := rl.NewImage(f.Atlas.Pixels, f.Atlas.Width, f.Atlas.Height, 1, format)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return rl.Font{}, errors.New("rlfont: texture upload failed")
	}

	font := rl.Font{
		BaseSize:   f.BaseSize,
		CharsCount: int32(len(f.Glyphs)),
		Texture:    tex,
	}
	if len(f.Glyphs) > 0 {
		recs := make([]rl.Rectangle, len(f.Glyphs))
		glyphs := make([]rl.GlyphInfo, len(f.Glyphs))
		for i, g := range f.Glyphs {
			recs[i] = rl.NewRectangle(g.Rect.X, g.Rect.Y, g.Rect.Width, g.Rect.Height)
			glyphs[i] = rl.GlyphInfo{
				Value:    g.Value,
				OffsetX:  g.OffsetX,
				OffsetY:  g.OffsetY,
				AdvanceX: g.AdvanceX,
			}
		}
		font.Recs = &recs[0]
		font.Chars = &glyphs[0]
	}
	return font, nil
}

// Release frees the font's atlas texture. Safe to call on a
// zero-value font.
func Release(font rl.Font) {
	if font.Texture.ID != 0 {
		rl.UnloadTexture(font.Texture)
	}
}

func pixelFormat(f style.PixelFormat) (rl.PixelFormat, error) {
	switch f {
	case style.PixelFormatGrayscale:
		return rl.UncompressedGrayscale, nil
	case style.PixelFormatGrayAlpha:
		return rl.UncompressedGrayAlpha, nil
	case style.PixelFormatRGBA8:
		return rl.UncompressedR8g8b8a8, nil
	default:
		return 0, fmt.Errorf("rlfont: unsupported atlas pixel format %d", f)
	}
}
