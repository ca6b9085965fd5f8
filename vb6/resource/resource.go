// Package resource reads .frx files, the binary companions of .frm
// forms. A form header references a record as "Form1.frx":offset; each
// record is a size-prefixed blob holding a picture, icon or long text.
package resource

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Blob is one record cut out of a .frx file.
type Blob struct {
	Offset int
	Size   int
	Data   []byte
}

// File wraps the raw bytes of a .frx file for repeated record lookups.
type File struct {
	Path string
	data []byte
}

func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file: %w", err)
	}
	return &File{Path: path, data: data}, nil
}

func New(data []byte) *File {
	return &File{data: data}
}

func (f *File) Len() int {
	return len(f.data)
}

// Blob reads the record at offset.
func (f *File) Blob(offset int) (*Blob, error) {
	return ReadBlob(f.data, offset)
}

// ReadBlob cuts the record at offset out of data. Most records carry a
// 32-bit little-endian size prefix; list records (string tables, image
// lists) use a 16-bit or 8-bit prefix instead. The prefix width is not
// stored anywhere, so the widest prefix whose size fits inside the file
// wins.
func ReadBlob(data []byte, offset int) (*Blob, error) {
	if offset < 0 || offset >= len(data) {
		return nil, fmt.Errorf("offset %d out of range (file has %d bytes)", offset, len(data))
	}
	rest := data[offset:]

	if len(rest) >= 4 {
		size := int(binary.LittleEndian.Uint32(rest))
		if size >= 0 && 4+size <= len(rest) {
			return blobAt(offset, 4, size, rest), nil
		}
	}
	if len(rest) >= 2 {
		size := int(binary.LittleEndian.Uint16(rest))
		if 2+size <= len(rest) {
			return blobAt(offset, 2, size, rest), nil
		}
	}
	size := int(rest[0])
	if 1+size <= len(rest) {
		return blobAt(offset, 1, size, rest), nil
	}
	return nil, fmt.Errorf("record at offset %d is truncated", offset)
}

func blobAt(offset, prefix, size int, rest []byte) *Blob {
	return &Blob{
		Offset: offset,
		Size:   size,
		Data:   rest[prefix : prefix+size],
	}
}
