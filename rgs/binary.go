package rgs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/appengine-ltd/rgstyle/style"
)

// Binary container layout (all integers little-endian):
//
//	offset  size  field
//	0       4     signature "rGS "
//	4       2     version (200)
//	6       2     reserved
//	8       4     property record count N
//	12      N*8   records { controlId int16, propertyId int16, value int32 }
//	...     4     font data size (0 = no font)
//	...     *     font block (see font.go)

// Save writes the document's change set, and the font if one is
// present, to path as a binary .rgs file.
func Save(path string, doc *style.Document, font *style.Font) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, font); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("rgs: write %s: %w", path, err)
	}
	return nil
}

// Load reads a binary .rgs file. The returned document holds the
// built-in baseline with the file's records applied, and its backup
// is snapshotted at the loaded state. The font is nil when the file
// embeds none.
func Load(path string) (*style.Document, *style.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rgs: read %s: %w", path, err)
	}
	doc, font, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("rgs: parse %s: %w", path, err)
	}
	return doc, font, nil
}

// Encode writes the binary form of doc (and font, which may be nil)
// to w.
func Encode(w io.Writer, doc *style.Document, font *style.Font) error {
	recs := doc.Changes()

	lw := &leWriter{w: w}
	lw.write(fileSignature)
	lw.write(fileVersion)
	lw.write(uint16(0)) // reserved
	lw.write(uint32(len(recs)))
	for _, rec := range recs {
		lw.write(int16(rec.Control))
		lw.write(int16(rec.Property))
		lw.write(rec.Value)
	}
	if lw.err != nil {
		return fmt.Errorf("rgs: write properties: %w", lw.err)
	}

	if font == nil {
		lw.write(int32(0))
		if lw.err != nil {
			return fmt.Errorf("rgs: write font size: %w", lw.err)
		}
		return nil
	}
	return encodeFontBlock(lw, font)
}

// Decode parses the binary form from r. Nothing caller-visible is
// touched until the whole stream has parsed: on any error the
// returned document is nil.
func Decode(r io.Reader) (*style.Document, *style.Font, error) {
	lr := &leReader{r: r}

	var sig [4]byte
	lr.read(&sig)
	if lr.err != nil {
		return nil, nil, fmt.Errorf("rgs: read signature: %w", lr.err)
	}
	if sig != fileSignature {
		return nil, nil, fmt.Errorf("%w: got %q", ErrBadSignature, sig[:])
	}

	var version, reserved uint16
	lr.read(&version)
	lr.read(&reserved)
	if lr.err != nil {
		return nil, nil, fmt.Errorf("rgs: read header: %w", lr.err)
	}
	if version != fileVersion {
		return nil, nil, fmt.Errorf("%w: file declares %d, supported %d", ErrVersion, version, fileVersion)
	}

	var count uint32
	lr.read(&count)
	if lr.err != nil {
		return nil, nil, fmt.Errorf("rgs: read record count: %w", lr.err)
	}
	if count > maxRecordCount {
		return nil, nil, fmt.Errorf("rgs: record count %d out of range", count)
	}

	type rawRecord struct {
		control  int16
		property int16
		value    int32
	}
	recs := make([]rawRecord, count)
	for i := range recs {
		lr.read(&recs[i].control)
		lr.read(&recs[i].property)
		lr.read(&recs[i].value)
	}
	if lr.err != nil {
		return nil, nil, fmt.Errorf("rgs: read property records: %w", lr.err)
	}
	for i, rec := range recs {
		if !style.Control(rec.control).Valid() {
			return nil, nil, fmt.Errorf("rgs: record %d: control id %d out of range", i, rec.control)
		}
		if !style.Property(rec.property).Valid() {
			return nil, nil, fmt.Errorf("rgs: record %d: property id %d out of range", i, rec.property)
		}
	}

	font, err := decodeFontBlock(lr)
	if err != nil {
		return nil, nil, err
	}

	doc := style.New()
	for _, rec := range recs {
		doc.Set(style.Control(rec.control), style.Property(rec.property), rec.value)
	}
	doc.SnapshotBackup()
	return doc, font, nil
}
