package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/striter"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("file is not a regular file")

// fragment is a chunk of a text file, as published by the loading goroutine.
type fragment struct {
	index int    // sequence number of this fragment
	data  []byte // content
	err   error  // I/O error while reading this fragment, if any
}

// textFile represents an OS file which will be loaded as a text buffer.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async fragment loading
}

// Load reads a file, which should be a text file, and returns its content as
// a text buffer. Clients may indicate a recommended fragment length; a value
// of 0 lets Load choose a sensible default depending on the file's size.
//
// The file's content is not checked for UTF-8 well-formedness. Segmenting a
// buffer with malformed bytes is well defined.
func Load(ctx context.Context, name string, fragSize int64) (striter.TextBuffer, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return striter.TextBuffer{}, err
	}
	tf, err := openFile(ctx, name)
	if err != nil {
		return striter.TextBuffer{}, err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	if size == 0 {
		tracer().Debugf("textfile: %s is empty", name)
		return striter.TextBuffer{}, nil
	}
	fragSize = fragmentSize(size, fragSize)
	n := int((size + fragSize - 1) / fragSize)
	tracer().Debugf("textfile: loading %d bytes from %s in %d fragments", size, name, n)
	// subscribe before the first fragment is published
	ch, ok := tf.cast.Sub(ctx, uint(n))
	if !ok {
		return striter.TextBuffer{}, fmt.Errorf("textfile: cannot subscribe to loader for %s", name)
	}
	go loadAllFragments(tf, n, fragSize)
	frags := make([][]byte, n)
	for received := 0; received < n; received++ {
		var msg interface{}
		select {
		case <-ctx.Done():
			return striter.TextBuffer{}, ctx.Err()
		case msg, ok = <-ch:
		}
		if !ok {
			if ctx.Err() != nil {
				return striter.TextBuffer{}, ctx.Err()
			}
			return striter.TextBuffer{}, fmt.Errorf("textfile: loading of %s interrupted", name)
		}
		frag := msg.(fragment)
		if frag.err != nil {
			return striter.TextBuffer{}, frag.err
		}
		frags[frag.index] = frag.data
	}
	b := striter.NewBuilder()
	for _, data := range frags {
		if err := b.AppendBytes(data); err != nil {
			return striter.TextBuffer{}, err
		}
	}
	buf := b.Buffer()
	if int64(buf.Len()) != size {
		return striter.TextBuffer{}, fmt.Errorf("textfile: %s changed while loading", name)
	}
	return buf, nil
}

// fragmentSize returns a fragment size suited for a file of size bytes.
// Requested sizes beyond ten kilobytes are replaced by the default.
func fragmentSize(size int64, requested int64) int64 {
	if requested > 0 && requested <= tenKb {
		return requested
	}
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s: %w", name, ErrNotRegular)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads n fragments of tf and publishes each of them, in order.
// It stops early if the broadcaster has been closed.
func loadAllFragments(tf *textFile, n int, fragSize int64) {
	size := tf.info.Size()
	for i := 0; i < n; i++ {
		pos := int64(i) * fragSize
		length := min(fragSize, size-pos)
		buf := make([]byte, length)
		frag := fragment{index: i, data: buf}
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && !(errors.Is(err, io.EOF) && int64(cnt) == length) {
			frag.err = fmt.Errorf("textfile: error loading fragment %d of %s: %w", i, tf.path, err)
		} else if int64(cnt) < length {
			frag.err = fmt.Errorf("textfile: not all bytes loaded for fragment %d of %s", i, tf.path)
		}
		if !tf.cast.Pub(frag) {
			tracer().Debugf("textfile: loader for %s closed, stopping", tf.path)
			return
		}
		if frag.err != nil {
			return
		}
	}
}
