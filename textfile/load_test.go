package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/striter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	content := strings.Repeat("Hello 🌍 é 世界\n", 200)
	name := writeFile(t, content)
	for _, fragSize := range []int64{0, 1, 7, 64, tenKb, 1 << 20} {
		buf, err := Load(context.Background(), name, fragSize)
		if err != nil {
			t.Fatalf("fragment size %d: %v", fragSize, err)
		}
		if buf.String() != content {
			t.Fatalf("fragment size %d: content differs from file", fragSize)
		}
	}
}

func TestLoadSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	name := writeFile(t, "Hello🌍世界")
	buf, err := Load(context.Background(), name, 3) // fragment borders inside scalars
	if err != nil {
		t.Fatal(err)
	}
	text := striter.NewFromBuffer(buf, striter.Config{Mode: "grapheme"})
	if text.Count() != 8 {
		t.Errorf("expected 8 graphemes, have %d", text.Count())
	}
}

func TestLoadEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	buf, err := Load(context.Background(), writeFile(t, ""), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !buf.IsEmpty() {
		t.Errorf("expected empty buffer, have %d bytes", buf.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, have %v", err)
	}
	if _, err := Load(context.Background(), t.TempDir(), 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, have %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, writeFile(t, "abc"), 0); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestFragmentSize(t *testing.T) {
	for _, c := range []struct {
		size, requested, want int64
	}{
		{10, 0, 10},
		{500, 0, 64},
		{5000, 0, 256},
		{50000, 0, 512},
		{500000, 0, twoKb},
		{5000000, 0, sixKb},
		{5000000, 100, 100},
		{5000, 2 * tenKb, 256},
	} {
		if got := fragmentSize(c.size, c.requested); got != c.want {
			t.Errorf("fragmentSize(%d, %d) = %d, want %d", c.size, c.requested, got, c.want)
		}
	}
}
