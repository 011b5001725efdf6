package render

import (
	"strings"
	"testing"
)

func TestMarkdownRendersContent(t *testing.T) {
	opts := DefaultOptions().WithStyle("notty")
	out, err := Markdown("# Title\n\nSome *body* text.", opts)
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("output missing heading text: %q", out)
	}
	if !strings.Contains(out, "body") {
		t.Errorf("output missing body text: %q", out)
	}
}

func TestMarkdownEmptyContent(t *testing.T) {
	opts := DefaultOptions().WithStyle("notty")
	if _, err := Markdown("", opts); err != nil {
		t.Errorf("Markdown(\"\") error = %v", err)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out, err := Markdown(long, DefaultOptions().WithStyle("notty").WithWidth(40))
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 80 {
			t.Errorf("line exceeds wrapped width: %q", line)
		}
	}
}

func TestPoolReuse(t *testing.T) {
	ClearCache()
	opts := DefaultOptions().WithStyle("notty")

	if _, err := Markdown("first", opts); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if _, err := Markdown("second", opts); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1 for identical options", CacheSize())
	}

	if _, err := Markdown("third", opts.WithWidth(40)); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2 after differing options", CacheSize())
	}
}

func TestDefaultOptionBuilders(t *testing.T) {
	opts := DefaultOptions().
		WithStyle("light").
		WithWidth(100).
		WithEmoji(false).
		WithPreserveNewLines(false)

	if opts.Style != "light" || opts.Width != 100 || opts.EnableEmoji || opts.PreserveNewLines {
		t.Errorf("builder result = %+v", opts)
	}
}
