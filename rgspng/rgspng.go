// Package rgspng embeds a .rgs style payload inside a PNG image as a
// private "rGSt" chunk, and extracts it back. The chunk rides along
// with the image: PNG readers ignore private ancillary chunks, so the
// same file works as a regular screenshot of the style and as the
// style itself.
//
// Only the chunk structure is touched; pixel data is never decoded.
package rgspng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

var chunkType = [4]byte{'r', 'G', 'S', 't'}

var (
	// ErrNotPNG is returned when the input does not carry the PNG
	// signature.
	ErrNotPNG = errors.New("rgspng: not a png file")

	// ErrNoStyleChunk is returned by Extract when the image holds no
	// rGSt chunk.
	ErrNoStyleChunk = errors.New("rgspng: no rGSt chunk present")
)

// Embed returns a copy of png with an rGSt chunk holding payload
// inserted directly after the IHDR chunk. An existing rGSt chunk is
// replaced rather than duplicated.
func Embed(png, payload []byte) ([]byte, error) {
	chunks, err := splitChunks(png)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(png)+len(payload)+12)
	out = append(out, pngSignature...)
	inserted := false
	for _, ch := range chunks {
		if ch.typ == chunkType {
			continue // replaced below
		}
		out = appendChunk(out, ch.typ, ch.data)
		if !inserted && string(ch.typ[:]) == "IHDR" {
			out = appendChunk(out, chunkType, payload)
			inserted = true
		}
	}
	if !inserted {
		return nil, fmt.Errorf("rgspng: png has no IHDR chunk")
	}
	return out, nil
}

// Extract returns the payload of the first rGSt chunk in png.
func Extract(png []byte) ([]byte, error) {
	chunks, err := splitChunks(png)
	if err != nil {
		return nil, err
	}
	for _, ch := range chunks {
		if ch.typ == chunkType {
			return append([]byte(nil), ch.data...), nil
		}
	}
	return nil, ErrNoStyleChunk
}

type chunk struct {
	typ  [4]byte
	data []byte
}

func splitChunks(png []byte) ([]chunk, error) {
	if len(png) < len(pngSignature) || !bytes.Equal(png[:len(pngSignature)], pngSignature) {
		return nil, ErrNotPNG
	}

	var chunks []chunk
	pos := len(pngSignature)
	for pos < len(png) {
		if len(png)-pos < 12 {
			return nil, fmt.Errorf("rgspng: truncated chunk at offset %d", pos)
		}
		length := binary.BigEndian.Uint32(png[pos:])
		if uint64(pos)+12+uint64(length) > uint64(len(png)) {
			return nil, fmt.Errorf("rgspng: chunk at offset %d overruns file", pos)
		}
		var ch chunk
		copy(ch.typ[:], png[pos+4:pos+8])
		ch.data = png[pos+8 : pos+8+int(length)]

		sum := binary.BigEndian.Uint32(png[pos+8+int(length):])
		if sum != chunkCRC(ch.typ, ch.data) {
			return nil, fmt.Errorf("rgspng: bad CRC on %q chunk at offset %d", ch.typ[:], pos)
		}

		chunks = append(chunks, ch)
		pos += 12 + int(length)
		if string(ch.typ[:]) == "IEND" {
			break
		}
	}
	return chunks, nil
}

func appendChunk(out []byte, typ [4]byte, data []byte) []byte {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], typ[:])
	out = append(out, hdr[:]...)
	out = append(out, data...)

	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], chunkCRC(typ, data))
	return append(out, tail[:]...)
}

// chunkCRC is the PNG chunk checksum: CRC-32 (IEEE) over the chunk
// type and data fields.
func chunkCRC(typ [4]byte, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(typ[:])
	h.Write(data)
	return h.Sum32()
}
