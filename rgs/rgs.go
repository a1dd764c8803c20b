// Package rgs reads and writes raygui style files (.rgs) in both the
// binary and the line-oriented text variant, including the optional
// embedded bitmap font.
//
// Both variants store the same thing: the change set produced by
// style.Document.Changes, in that exact order. A file therefore
// carries only genuine deviations from the baseline the document was
// snapshotted against, never the full table.
package rgs

import (
	"encoding/binary"
	"errors"
	"io"
)

// Binary container signature and the one format version this package
// understands. Version 200 reads as "2.00".
var fileSignature = [4]byte{'r', 'G', 'S', ' '}

const fileVersion uint16 = 200

// Text variant version, written into the header comment only.
const textVersion = "3.0"

var (
	// ErrBadSignature is returned when a binary file does not start
	// with the "rGS " magic bytes.
	ErrBadSignature = errors.New("rgs: bad file signature")

	// ErrVersion is returned when the version field holds anything
	// other than the supported version. The format has no
	// multi-version decode path; a mismatch is a hard error rather
	// than a guess.
	ErrVersion = errors.New("rgs: unsupported file version")
)

// FontRef is the font reference carried by the text variant: the
// source font file plus the size and spacing it was generated with.
// The text format does not embed font pixels; reloading the font from
// FileName is the caller's responsibility.
type FontRef struct {
	Size     int32
	Spacing  int32
	FileName string
}

// Decode limits. Nothing legitimate comes close; these only bound
// allocations when a corrupt header declares absurd counts.
const (
	maxRecordCount = 1 << 20
	maxGlyphCount  = 1 << 20
	maxImageBytes  = 64 << 20
)

// leWriter and leReader wrap the little-endian field plumbing so the
// codec bodies read like the format tables they implement. The first
// error latches; later calls are no-ops.
type leWriter struct {
	w   io.Writer
	err error
}

func (lw *leWriter) write(v any) {
	if lw.err == nil {
		lw.err = binary.Write(lw.w, binary.LittleEndian, v)
	}
}

func (lw *leWriter) bytes(b []byte) {
	if lw.err == nil {
		_, lw.err = lw.w.Write(b)
	}
}

type leReader struct {
	r   io.Reader
	err error
}

func (lr *leReader) read(v any) {
	if lr.err == nil {
		lr.err = binary.Read(lr.r, binary.LittleEndian, v)
	}
}

func (lr *leReader) bytes(b []byte) {
	if lr.err == nil {
		_, lr.err = io.ReadFull(lr.r, b)
	}
}
