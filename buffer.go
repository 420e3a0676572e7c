package striter

import "io"

// TextBuffer is an immutable byte sequence, expected to hold UTF-8 text.
//
// A TextBuffer owns its bytes: constructors copy their input, and accessors
// never hand out the internal storage. The zero value is the empty buffer.
type TextBuffer struct {
	b []byte
}

// NewTextBuffer creates a buffer holding a copy of b.
func NewTextBuffer(b []byte) TextBuffer {
	if len(b) == 0 {
		return TextBuffer{}
	}
	c := make([]byte, len(b))
	copy(c, b)
	return TextBuffer{b: c}
}

// BufferFromString creates a buffer holding the bytes of s.
func BufferFromString(s string) TextBuffer {
	if s == "" {
		return TextBuffer{}
	}
	return TextBuffer{b: []byte(s)}
}

// Len returns the length of the buffer in bytes.
func (buf TextBuffer) Len() int {
	return len(buf.b)
}

// IsEmpty reports whether the buffer has no bytes.
func (buf TextBuffer) IsEmpty() bool {
	return len(buf.b) == 0
}

// Bytes returns a copy of the buffer's bytes.
func (buf TextBuffer) Bytes() []byte {
	if len(buf.b) == 0 {
		return nil
	}
	c := make([]byte, len(buf.b))
	copy(c, buf.b)
	return c
}

// String returns the buffer's bytes as a string.
func (buf TextBuffer) String() string {
	return string(buf.b)
}

// Reader returns a reader for the bytes of buf.
func (buf TextBuffer) Reader() io.Reader {
	return &bufferReader{b: buf.b}
}

type bufferReader struct {
	b      []byte
	cursor int
}

func (br *bufferReader) Read(p []byte) (n int, err error) {
	if br.cursor >= len(br.b) {
		return 0, io.EOF
	}
	n = copy(p, br.b[br.cursor:])
	br.cursor += n
	return n, nil
}
