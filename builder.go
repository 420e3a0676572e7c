package striter

// Builder incrementally stages fragments and finalizes them into a TextBuffer.
//
// Fragments may be any bytes; they are not checked for UTF-8 well-formedness,
// and fragment borders may fall inside a multi-byte sequence.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front [][]byte
	// back keeps appended fragments in logical order.
	back [][]byte
	size int

	done bool
	buf  TextBuffer
}

// NewBuilder creates a new and empty buffer builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Buffer returns the text buffer built from all staged fragments.
//
// It is illegal to continue adding fragments after Buffer has been called, but
// Buffer may be called multiple times.
func (b *Builder) Buffer() TextBuffer {
	if b == nil {
		return TextBuffer{}
	}
	if b.done {
		return b.buf
	}
	b.done = true
	if b.size == 0 {
		tracer().Debugf("buffer builder: buffer is empty")
		return b.buf
	}
	out := make([]byte, 0, b.size)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i]...)
	}
	for _, frag := range b.back {
		out = append(out, frag...)
	}
	b.front, b.back = nil, nil
	b.buf = TextBuffer{b: out}
	return b.buf
}

// Len returns the number of bytes staged so far.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.size = 0
	b.done = false
	b.buf = TextBuffer{}
}

// AppendString appends text to the staged build.
func (b *Builder) AppendString(text string) error {
	return b.AppendBytes([]byte(text))
}

// AppendBytes appends a copy of text to the staged build.
func (b *Builder) AppendBytes(text []byte) error {
	frag, err := b.stage(text)
	if err != nil || frag == nil {
		return err
	}
	b.back = append(b.back, frag)
	return nil
}

// PrependBytes prepends a copy of text to the staged build.
func (b *Builder) PrependBytes(text []byte) error {
	frag, err := b.stage(text)
	if err != nil || frag == nil {
		return err
	}
	b.front = append(b.front, frag)
	return nil
}

func (b *Builder) stage(text []byte) ([]byte, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	if b.done {
		return nil, ErrBufferCompleted
	}
	if len(text) == 0 {
		return nil, nil
	}
	frag := make([]byte, len(text))
	copy(frag, text)
	b.size += len(frag)
	return frag, nil
}
