package rgs

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/appengine-ltd/rgstyle/style"
)

// Font block layout, following the property records:
//
//	4    data size (includes this field; 0 = no font, block ends here)
//	4    base size
//	4    glyph count
//	4    font type (0 normal, 1 SDF)
//	16   white rectangle (reserved, zero)
//	4    image uncompressed size
//	4    image compressed size (== uncompressed when stored raw)
//	4    image width
//	4    image height
//	4    image pixel format
//	*    image bytes (DEFLATE stream when compressed)
//	16N  glyph atlas rectangles (x, y, w, h float32)
//	16N  glyph metrics (codepoint, offsetX, offsetY, advanceX int32)
const (
	fontParamsSize  = 32
	imageParamsSize = 20
	glyphRecordSize = 32
)

func encodeFontBlock(lw *leWriter, font *style.Font) error {
	// Reduce a copy, never the caller's font.
	f := font.Clone()
	if err := f.ToGrayAlpha(); err != nil {
		return fmt.Errorf("rgs: reduce font atlas: %w", err)
	}

	raw := f.Atlas.Pixels
	imageBytes, _ := CompressAtlas(raw)

	dataSize := fontParamsSize + imageParamsSize + len(imageBytes) + glyphRecordSize*len(f.Glyphs)

	lw.write(int32(dataSize))
	lw.write(f.BaseSize)
	lw.write(int32(len(f.Glyphs)))
	lw.write(int32(0))      // font type: normal
	lw.write(style.RectF{}) // white rectangle, reserved

	lw.write(int32(len(raw)))
	lw.write(int32(len(imageBytes)))
	lw.write(f.Atlas.Width)
	lw.write(f.Atlas.Height)
	lw.write(int32(f.Atlas.Format))
	lw.bytes(imageBytes)

	for _, g := range f.Glyphs {
		lw.write(g.Rect)
	}
	for _, g := range f.Glyphs {
		lw.write(g.Value)
		lw.write(g.OffsetX)
		lw.write(g.OffsetY)
		lw.write(g.AdvanceX)
	}
	if lw.err != nil {
		return fmt.Errorf("rgs: write font block: %w", lw.err)
	}
	return nil
}

// decodeFontBlock mirrors encodeFontBlock. A zero data-size field
// means no font was embedded and nothing further is read.
func decodeFontBlock(lr *leReader) (*style.Font, error) {
	var dataSize int32
	lr.read(&dataSize)
	if lr.err != nil {
		return nil, fmt.Errorf("rgs: read font size: %w", lr.err)
	}
	if dataSize == 0 {
		return nil, nil
	}
	if dataSize < 0 {
		return nil, fmt.Errorf("rgs: font data size %d out of range", dataSize)
	}

	f := &style.Font{}
	var glyphCount, fontType int32
	var whiteRect style.RectF
	lr.read(&f.BaseSize)
	lr.read(&glyphCount)
	lr.read(&fontType)
	lr.read(&whiteRect)
	if lr.err != nil {
		return nil, fmt.Errorf("rgs: read font params: %w", lr.err)
	}
	if glyphCount < 0 || glyphCount > maxGlyphCount {
		return nil, fmt.Errorf("rgs: glyph count %d out of range", glyphCount)
	}

	var uncompSize, compSize, format int32
	lr.read(&uncompSize)
	lr.read(&compSize)
	lr.read(&f.Atlas.Width)
	lr.read(&f.Atlas.Height)
	lr.read(&format)
	if lr.err != nil {
		return nil, fmt.Errorf("rgs: read font image params: %w", lr.err)
	}
	if uncompSize < 0 || uncompSize > maxImageBytes || compSize < 0 || compSize > maxImageBytes {
		return nil, fmt.Errorf("rgs: font image sizes %d/%d out of range", compSize, uncompSize)
	}
	f.Atlas.Format = style.PixelFormat(format)
	if f.Atlas.Format.BytesPerPixel() == 0 {
		return nil, fmt.Errorf("rgs: unknown font image pixel format %d", format)
	}
	if want := fontParamsSize + imageParamsSize + int(compSize) + glyphRecordSize*int(glyphCount); int(dataSize) != want {
		return nil, fmt.Errorf("rgs: font data size %d does not match contents (%d)", dataSize, want)
	}

	imageBytes := make([]byte, compSize)
	lr.bytes(imageBytes)
	if lr.err != nil {
		return nil, fmt.Errorf("rgs: read font image: %w", lr.err)
	}
	if compSize != uncompSize {
		px, err := decompressPixels(imageBytes, int(uncompSize))
		if err != nil {
			return nil, fmt.Errorf("rgs: decompress font image: %w", err)
		}
		imageBytes = px
	}
	if len(imageBytes) != f.Atlas.PixelDataSize() {
		return nil, fmt.Errorf("rgs: font image is %d bytes, want %d for %dx%d format %d",
			len(imageBytes), f.Atlas.PixelDataSize(), f.Atlas.Width, f.Atlas.Height, format)
	}
	f.Atlas.Pixels = imageBytes

	f.Glyphs = make([]style.Glyph, glyphCount)
	for i := range f.Glyphs {
		lr.read(&f.Glyphs[i].Rect)
	}
	for i := range f.Glyphs {
		lr.read(&f.Glyphs[i].Value)
		lr.read(&f.Glyphs[i].OffsetX)
		lr.read(&f.Glyphs[i].OffsetY)
		lr.read(&f.Glyphs[i].AdvanceX)
	}
	if lr.err != nil {
		return nil, fmt.Errorf("rgs: read glyph records: %w", lr.err)
	}
	return f, nil
}

// CompressAtlas DEFLATE-compresses an atlas pixel buffer, keeping the
// raw bytes whenever compression does not win. The returned flag
// reports which was chosen. The binary codec and the code exporter
// both go through here so an exported header embeds the same bytes a
// .rgs file would.
func CompressAtlas(px []byte) ([]byte, bool) {
	comp, err := compressPixels(px)
	if err != nil || len(comp) >= len(px) {
		return px, false
	}
	return comp, true
}

// compressPixels DEFLATE-compresses a pixel buffer.
func compressPixels(px []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(px); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompressPixels inflates a buffer produced by compressPixels and
// checks the result against the recorded uncompressed size.
func decompressPixels(data []byte, uncompSize int) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(data))
	defer zr.Close()
	px, err := io.ReadAll(io.LimitReader(zr, int64(uncompSize)+1))
	if err != nil {
		return nil, err
	}
	if len(px) != uncompSize {
		return nil, fmt.Errorf("inflated to %d bytes, expected %d", len(px), uncompSize)
	}
	return px, nil
}
