package browser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/og-preview/pkg/storage"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dom.html")
	if err := os.WriteFile(path, []byte(`<html><head><meta property="og:title" content="Live"></head></html>`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := &FileSource{Path: path, Storage: &storage.Storage{}}
	if src.Name() != "file" {
		t.Errorf("Name() = %q", src.Name())
	}

	page, err := src.Render(context.Background(), "https://example.com/a")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if page.URL != "https://example.com/a" {
		t.Errorf("URL = %q", page.URL)
	}
	if !strings.Contains(page.HTML, `content="Live"`) {
		t.Errorf("HTML = %q", page.HTML)
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "nope.html"), Storage: &storage.Storage{}}
	if _, err := src.Render(context.Background(), "https://example.com"); err == nil {
		t.Error("Render() expected error for missing file")
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(Options{}, nil)
	if r.opts.Settle != DefaultSettle {
		t.Errorf("Settle = %v, want %v", r.opts.Settle, DefaultSettle)
	}
	if r.Name() != "chrome" {
		t.Errorf("Name() = %q", r.Name())
	}
}
