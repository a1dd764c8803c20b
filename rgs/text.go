package rgs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/appengine-ltd/rgstyle/style"
)

// Text variant: '#' comment lines, one 'p' line per changed property
// in the same order as the binary records, and an optional 'f' line
// referencing the custom font file. Values are 0x-prefixed hex so the
// files diff cleanly.

// SaveText writes the text form of the style to path. name appears in
// the header comment; fontRef, when non-nil, produces the 'f' line.
func SaveText(path string, doc *style.Document, name string, fontRef *FontRef) error {
	var buf bytes.Buffer
	if err := EncodeText(&buf, doc, name, fontRef); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("rgs: write %s: %w", path, err)
	}
	return nil
}

// LoadText reads a text .rgs file. The returned FontRef is nil when
// the file carries no 'f' line.
func LoadText(path string) (*style.Document, *FontRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rgs: read %s: %w", path, err)
	}
	doc, ref, err := DecodeText(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("rgs: parse %s: %w", path, err)
	}
	return doc, ref, nil
}

// EncodeText writes the text form of doc to w.
func EncodeText(w io.Writer, doc *style.Document, name string, fontRef *FontRef) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#\n# rgs style text file (v%s) - raygui style file generated using rGuiStyler\n#\n", textVersion)
	fmt.Fprintf(bw, "# Info:  p <controlId> <propertyId> <propertyValue>  // Property description\n#\n")
	fmt.Fprintf(bw, "# STYLE: %s\n#\n", name)

	if fontRef != nil {
		fmt.Fprintf(bw, "f %d %d %s\n", fontRef.Size, fontRef.Spacing, fontRef.FileName)
	}

	for _, rec := range doc.Changes() {
		fmt.Fprintf(bw, "p %02d %02d 0x%08x    // %s_%s\n",
			rec.Control, rec.Property, uint32(rec.Value), rec.Control, rec.Property)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rgs: write text style: %w", err)
	}
	return nil
}

// DecodeText parses the text form from r. As with Decode, the
// document is built fresh and snapshotted; errors leave no partial
// result.
func DecodeText(r io.Reader) (*style.Document, *FontRef, error) {
	doc := style.New()
	var fontRef *FontRef

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("rgs: line %d: malformed property line", lineNo)
			}
			control, err := strconv.ParseInt(fields[1], 10, 16)
			if err != nil {
				return nil, nil, fmt.Errorf("rgs: line %d: control id: %w", lineNo, err)
			}
			property, err := strconv.ParseInt(fields[2], 10, 16)
			if err != nil {
				return nil, nil, fmt.Errorf("rgs: line %d: property id: %w", lineNo, err)
			}
			value, err := strconv.ParseUint(strings.TrimPrefix(fields[3], "0x"), 16, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("rgs: line %d: property value: %w", lineNo, err)
			}
			if !style.Control(control).Valid() {
				return nil, nil, fmt.Errorf("rgs: line %d: control id %d out of range", lineNo, control)
			}
			if !style.Property(property).Valid() {
				return nil, nil, fmt.Errorf("rgs: line %d: property id %d out of range", lineNo, property)
			}
			doc.Set(style.Control(control), style.Property(property), int32(value))
		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("rgs: line %d: malformed font line", lineNo)
			}
			size, err := strconv.ParseInt(fields[1], 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("rgs: line %d: font size: %w", lineNo, err)
			}
			spacing, err := strconv.ParseInt(fields[2], 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("rgs: line %d: font spacing: %w", lineNo, err)
			}
			fontRef = &FontRef{
				Size:     int32(size),
				Spacing:  int32(spacing),
				FileName: strings.Join(fields[3:], " "),
			}
		default:
			return nil, nil, fmt.Errorf("rgs: line %d: unknown line type %q", lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("rgs: read text style: %w", err)
	}

	doc.SnapshotBackup()
	return doc, fontRef, nil
}
