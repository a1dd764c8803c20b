// Package rgscode renders a style as a ready-to-use C header: the
// change set as a property table, the embedded font as byte arrays,
// and a generated GuiLoadStyle* routine that applies both at program
// startup. No information beyond the binary .rgs contents is
// introduced, so loading the generated code reproduces the same
// style table the export was taken from.
package rgscode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/appengine-ltd/rgstyle/rgs"
	"github.com/appengine-ltd/rgstyle/style"
)

// Export writes the generated header for doc (and font, which may be
// nil) to path. name is the style's display name; it is normalized to
// identifier form for the array and function names.
func Export(path, name string, doc *style.Document, font *style.Font) error {
	var buf bytes.Buffer
	if err := Write(&buf, name, doc, font); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("rgscode: write %s: %w", path, err)
	}
	return nil
}

// Write renders the generated header to w.
func Write(w io.Writer, name string, doc *style.Document, font *style.Font) error {
	pascal := PascalName(name)
	recs := doc.Changes()

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "//////////////////////////////////////////////////////////////////////////////////\n")
	fmt.Fprintf(bw, "//                                                                              //\n")
	fmt.Fprintf(bw, "// StyleAsCode exporter v2.0 - Style data exported as a values array            //\n")
	fmt.Fprintf(bw, "//                                                                              //\n")
	fmt.Fprintf(bw, "// USAGE: On init call: GuiLoadStyle%s();%s//\n", pascal, pad(44-len(pascal)))
	fmt.Fprintf(bw, "//                                                                              //\n")
	fmt.Fprintf(bw, "//////////////////////////////////////////////////////////////////////////////////\n\n")

	fmt.Fprintf(bw, "#define %s_STYLE_PROPS_COUNT  %d\n\n", strings.ToUpper(pascal), len(recs))
	fmt.Fprintf(bw, "// Custom style name: %s\n", name)
	fmt.Fprintf(bw, "static const GuiStyleProp %sStyleProps[%s_STYLE_PROPS_COUNT] = {\n", lowerFirst(pascal), strings.ToUpper(pascal))
	for _, rec := range recs {
		fmt.Fprintf(bw, "    { %d, %d, 0x%08x },    // %v_%v\n", rec.Control, rec.Property, uint32(rec.Value), rec.Control, rec.Property)
	}
	fmt.Fprintf(bw, "};\n\n")

	var embedded *style.Font
	if font != nil {
		var err error
		embedded, err = writeFontArrays(bw, pascal, font)
		if err != nil {
			return err
		}
	}

	writeLoader(bw, name, pascal, embedded)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rgscode: write generated code: %w", err)
	}
	return nil
}

// writeFontArrays emits the atlas bytes (compressed when that wins,
// the same choice the binary codec makes), the glyph rectangle table
// and the glyph metrics table. It returns the gray+alpha-reduced font
// for the loader routine.
func writeFontArrays(bw *bufio.Writer, pascal string, font *style.Font) (*style.Font, error) {
	f := font.Clone()
	if err := f.ToGrayAlpha(); err != nil {
		return nil, fmt.Errorf("rgscode: reduce font atlas: %w", err)
	}

	data, compressed := rgs.CompressAtlas(f.Atlas.Pixels)

	upper := strings.ToUpper(pascal)
	lower := lowerFirst(pascal)

	storage := "raw"
	if compressed {
		storage = "DEFLATE compressed"
	}
	fmt.Fprintf(bw, "// Custom font: atlas image pixel data (%s)\n", storage)
	fmt.Fprintf(bw, "#define %s_STYLE_FONT_ATLAS_COMP_SIZE  %d\n", upper, len(data))
	fmt.Fprintf(bw, "static unsigned char %sFontData[%s_STYLE_FONT_ATLAS_COMP_SIZE] = { ", lower, upper)
	for i, b := range data {
		if i%24 == 0 {
			fmt.Fprintf(bw, "\n    ")
		}
		fmt.Fprintf(bw, "0x%02x, ", b)
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "// Font glyphs rectangles data (on atlas)\n")
	fmt.Fprintf(bw, "static const Rectangle %sFontRecs[%d] = {\n", lower, len(f.Glyphs))
	for _, g := range f.Glyphs {
		fmt.Fprintf(bw, "    { %s, %s, %s, %s },\n", cfloat(g.Rect.X), cfloat(g.Rect.Y), cfloat(g.Rect.Width), cfloat(g.Rect.Height))
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "// Font glyphs info data\n")
	fmt.Fprintf(bw, "// NOTE: No glyphs.image data provided\n")
	fmt.Fprintf(bw, "static const GlyphInfo %sFontGlyphs[%d] = {\n", lower, len(f.Glyphs))
	for _, g := range f.Glyphs {
		fmt.Fprintf(bw, "    { %d, %d, %d, %d, { 0 }},\n", g.Value, g.OffsetX, g.OffsetY, g.AdvanceX)
	}
	fmt.Fprintf(bw, "};\n\n")

	return f, nil
}

func writeLoader(bw *bufio.Writer, name, pascal string, embedded *style.Font) {
	lower := lowerFirst(pascal)
	upper := strings.ToUpper(pascal)

	fmt.Fprintf(bw, "// Style loading function: %s\n", name)
	fmt.Fprintf(bw, "static void GuiLoadStyle%s(void)\n{\n", pascal)
	fmt.Fprintf(bw, "    // Load style properties provided\n")
	fmt.Fprintf(bw, "    // NOTE: Default properties are propagated\n")
	fmt.Fprintf(bw, "    for (int i = 0; i < %s_STYLE_PROPS_COUNT; i++)\n", upper)
	fmt.Fprintf(bw, "    {\n")
	fmt.Fprintf(bw, "        GuiSetStyle(%sStyleProps[i].controlId, %sStyleProps[i].propertyId, %sStyleProps[i].propertyValue);\n", lower, lower, lower)
	fmt.Fprintf(bw, "    }\n")

	if embedded != nil {
		atlasLen := embedded.Atlas.PixelDataSize()
		fmt.Fprintf(bw, "\n    // Custom font loading\n")
		fmt.Fprintf(bw, "    // NOTE: Atlas image data decompressed with raylib DecompressData() when compressed\n")
		fmt.Fprintf(bw, "    int %sFontDataSize = 0;\n", lower)
		fmt.Fprintf(bw, "    unsigned char *data = (%s_STYLE_FONT_ATLAS_COMP_SIZE == %d)? %sFontData : DecompressData(%sFontData, %s_STYLE_FONT_ATLAS_COMP_SIZE, &%sFontDataSize);\n",
			upper, atlasLen, lower, lower, upper, lower)
		fmt.Fprintf(bw, "    Image imFont = { data, %d, %d, 1, %d };\n\n", embedded.Atlas.Width, embedded.Atlas.Height, embedded.Atlas.Format)
		fmt.Fprintf(bw, "    Font font = { 0 };\n")
		fmt.Fprintf(bw, "    font.baseSize = %d;\n", embedded.BaseSize)
		fmt.Fprintf(bw, "    font.glyphCount = %d;\n\n", len(embedded.Glyphs))
		fmt.Fprintf(bw, "    // Load texture from image\n")
		fmt.Fprintf(bw, "    font.texture = LoadTextureFromImage(imFont);\n\n")
		fmt.Fprintf(bw, "    // Copy glyph recs data from global fontRecs\n")
		fmt.Fprintf(bw, "    font.recs = (Rectangle *)RAYGUI_MALLOC(font.glyphCount*sizeof(Rectangle));\n")
		fmt.Fprintf(bw, "    memcpy(font.recs, %sFontRecs, font.glyphCount*sizeof(Rectangle));\n\n", lower)
		fmt.Fprintf(bw, "    // Copy font glyph info data from global fontGlyphs\n")
		fmt.Fprintf(bw, "    font.glyphs = (GlyphInfo *)RAYGUI_MALLOC(font.glyphCount*sizeof(GlyphInfo));\n")
		fmt.Fprintf(bw, "    memcpy(font.glyphs, %sFontGlyphs, font.glyphCount*sizeof(GlyphInfo));\n\n", lower)
		fmt.Fprintf(bw, "    GuiSetFont(font);\n")
	}

	fmt.Fprintf(bw, "}\n")
}

// PascalName normalizes a style display name into an identifier:
// non-alphanumerics split words, each word is capitalized.
func PascalName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			if upperNext {
				b.WriteRune(r - 'a' + 'A')
			} else {
				b.WriteRune(r)
			}
			upperNext = false
		case r >= 'A' && r <= 'Z':
			if !upperNext {
				r = r - 'A' + 'a'
			}
			b.WriteRune(r)
			upperNext = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	if b.Len() == 0 {
		return "Style"
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func cfloat(v float32) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s + "f"
}

func pad(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}
