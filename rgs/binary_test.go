package rgs

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/appengine-ltd/rgstyle/style"
)

func testFont(t *testing.T) *style.Font {
	t.Helper()
	// Repetitive atlas so the DEFLATE path is exercised.
	px := make([]byte, 32*32*2)
	for i := 0; i < len(px); i += 2 {
		px[i] = 0xff
		px[i+1] = byte(i / 64)
	}
	return &style.Font{
		BaseSize: 16,
		Atlas:    style.Image{Width: 32, Height: 32, Format: style.PixelFormatGrayAlpha, Pixels: px},
		Glyphs: []style.Glyph{
			{Rect: style.RectF{X: 0, Y: 0, Width: 8, Height: 16}, Value: 'A', OffsetX: 1, OffsetY: 2, AdvanceX: 9},
			{Rect: style.RectF{X: 8, Y: 0, Width: 6, Height: 16}, Value: 'B', OffsetX: 0, OffsetY: 2, AdvanceX: 7},
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	doc := style.New()
	red := style.PackColor(0xe6, 0x29, 0x37, 0xff)
	doc.Set(style.ControlDefault, style.BaseColorNormal, red)
	doc.Set(style.ControlDefault, style.TextSize, 14)
	doc.Set(style.ControlButton, style.BorderWidth, 3)
	doc.Set(style.ControlListView, style.TextColorNormal, style.PackColor(1, 2, 3, 4))

	wantRecs := doc.Changes()

	var buf bytes.Buffer
	if err := Encode(&buf, doc, testFont(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, gotFont, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// Every emitted cell round-trips; every other cell is baseline.
	emitted := map[[2]int32]int32{}
	for _, rec := range wantRecs {
		emitted[[2]int32{int32(rec.Control), int32(rec.Property)}] = rec.Value
	}
	for c := style.Control(0); c < style.NumControls; c++ {
		for p := style.Property(0); p < style.NumProps; p++ {
			want, ok := emitted[[2]int32{int32(c), int32(p)}]
			if !ok {
				want = style.DefaultValue(p)
			}
			if got.Get(c, p) != want {
				t.Fatalf("cell (%v,%v) = %#x, want %#x", c, p, got.Get(c, p), want)
			}
		}
	}

	// A loaded document is snapshotted: no pending changes.
	if n := got.CountChanges(); n != 0 {
		t.Fatalf("loaded document reports %d pending changes", n)
	}

	if gotFont == nil {
		t.Fatal("decoded font is nil")
	}
	f := testFont(t)
	if gotFont.BaseSize != f.BaseSize || len(gotFont.Glyphs) != len(f.Glyphs) {
		t.Fatalf("font params: got baseSize=%d glyphs=%d", gotFont.BaseSize, len(gotFont.Glyphs))
	}
	if !bytes.Equal(gotFont.Atlas.Pixels, f.Atlas.Pixels) {
		t.Fatal("atlas pixels do not round-trip")
	}
	for i := range f.Glyphs {
		if gotFont.Glyphs[i] != f.Glyphs[i] {
			t.Fatalf("glyph %d = %+v, want %+v", i, gotFont.Glyphs[i], f.Glyphs[i])
		}
	}
}

func TestBinaryRecordCountMatchesHeader(t *testing.T) {
	doc := style.New()
	doc.Set(style.ControlDefault, style.BorderWidth, 2)
	doc.Set(style.ControlSlider, style.BaseColorFocused, style.PackColor(7, 7, 7, 7))

	var buf bytes.Buffer
	if err := Encode(&buf, doc, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data := buf.Bytes()
	count := uint32(data[8]) | uint32(data[9])<<8 | uint32(data[10])<<16 | uint32(data[11])<<24
	if int(count) != doc.CountChanges() {
		t.Fatalf("header count %d, CountChanges %d", count, doc.CountChanges())
	}
	// 12-byte header, 8 bytes per record, 4-byte zero font size.
	if want := 12 + 8*int(count) + 4; len(data) != want {
		t.Fatalf("file is %d bytes, want %d", len(data), want)
	}
}

func TestBinaryNoFont(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, style.New(), nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, font, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if font != nil {
		t.Fatalf("decoded font = %+v, want nil", font)
	}
}

func TestBinaryZeroGlyphFont(t *testing.T) {
	f := testFont(t)
	f.Glyphs = nil

	var buf bytes.Buffer
	if err := Encode(&buf, style.New(), f); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, got, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got == nil {
		t.Fatal("decoded font is nil")
	}
	if len(got.Glyphs) != 0 {
		t.Fatalf("decoded %d glyphs, want 0", len(got.Glyphs))
	}
	if !bytes.Equal(got.Atlas.Pixels, f.Atlas.Pixels) {
		t.Fatal("atlas pixels do not round-trip")
	}
}

func TestBinaryBadSignature(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, style.New(), nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	data[0] = 'x'

	_, _, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature", err)
	}
}

func TestBinaryBadVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, style.New(), nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	data[4] = 0x2c // 300
	data[5] = 0x01

	_, _, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("err = %v, want ErrVersion", err)
	}
}

func TestBinaryTruncated(t *testing.T) {
	doc := style.New()
	doc.Set(style.ControlButton, style.BorderWidth, 5)
	doc.Set(style.ControlDefault, style.TextSize, 12)

	var buf bytes.Buffer
	if err := Encode(&buf, doc, testFont(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()

	// Any prefix shorter than the full stream must fail, and the
	// inner cause must be an EOF class error, never a panic.
	for _, cut := range []int{3, 6, 10, 13, len(data) / 2, len(data) - 1} {
		_, _, err := Decode(bytes.NewReader(data[:cut]))
		if err == nil {
			t.Fatalf("Decode of %d-byte prefix succeeded", cut)
		}
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("Decode of %d-byte prefix: %v, want EOF class", cut, err)
		}
	}
}

func TestBinaryRecordOutOfRange(t *testing.T) {
	doc := style.New()
	doc.Set(style.ControlButton, style.BorderWidth, 5)

	var buf bytes.Buffer
	if err := Encode(&buf, doc, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	data[12] = 0xff // control id of first record -> garbage
	data[13] = 0x7f

	if _, _, err := Decode(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for out-of-range control id")
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := t.TempDir() + "/style.rgs"

	doc := style.New()
	doc.Set(style.ControlDefault, style.BackgroundColor, style.PackColor(0x20, 0x21, 0x25, 0xff))
	if err := Save(path, doc, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, font, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if font != nil {
		t.Fatal("unexpected font from fontless file")
	}
	if v := got.Get(style.ControlDefault, style.BackgroundColor); v != style.PackColor(0x20, 0x21, 0x25, 0xff) {
		t.Fatalf("BACKGROUND_COLOR = %#x", v)
	}

	if _, _, err := Load(t.TempDir() + "/missing.rgs"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
