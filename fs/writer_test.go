package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/bookmirror"
	"github.com/fwojciec/bookmirror/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("lists chapters in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		book := &bookmirror.Book{Title: "Example Book", TocURL: "https://example.com/toc"}
		chapters := []*bookmirror.Chapter{
			{Title: "One", Filename: "01_one.md"},
			{Title: "Two", Filename: "02_two.md"},
		}

		w := fs.NewWriter(dir)
		require.NoError(t, w.WriteIndex(book, chapters))

		data, err := os.ReadFile(filepath.Join(dir, fs.IndexFilename))
		require.NoError(t, err)

		want := `# Example Book

- [One](01_one.md)
- [Two](02_two.md)

Scraped from [https://example.com/toc](https://example.com/toc)
`
		assert.Equal(t, want, string(data))
	})

	t.Run("groups chapters under section headings", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		book := &bookmirror.Book{Title: "Grouped Book", TocURL: "https://example.com/toc"}
		chapters := []*bookmirror.Chapter{
			{Title: "One", Filename: "01_one.md", Group: "Module 1"},
			{Title: "Two", Filename: "02_two.md", Group: "Module 1"},
			{Title: "Three", Filename: "03_three.md", Group: "Module 2"},
		}

		w := fs.NewWriter(dir)
		require.NoError(t, w.WriteIndex(book, chapters))

		data, err := os.ReadFile(filepath.Join(dir, fs.IndexFilename))
		require.NoError(t, err)

		want := `# Grouped Book

## Module 1

- [One](01_one.md)
- [Two](02_two.md)

## Module 2

- [Three](03_three.md)

Scraped from [https://example.com/toc](https://example.com/toc)
`
		assert.Equal(t, want, string(data))
	})

	t.Run("creates the book directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "book")
		w := fs.NewWriter(dir)
		require.NoError(t, w.WriteIndex(&bookmirror.Book{Title: "T", TocURL: "u"}, nil))

		_, err := os.Stat(filepath.Join(dir, fs.IndexFilename))
		require.NoError(t, err)
	})
}

func TestWriter_WriteChapter(t *testing.T) {
	t.Parallel()

	t.Run("writes provenance frontmatter before the content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		w := fs.NewWriter(dir, fs.WithClock(func() time.Time { return fixed }))

		chapter := &bookmirror.Chapter{
			Title:    "Trusted Setup",
			URL:      "https://example.com/ch1",
			Filename: "01_trusted_setup.md",
		}
		require.NoError(t, w.WriteChapter(chapter, "# Trusted Setup\n\nBody.\n"))

		data, err := os.ReadFile(filepath.Join(dir, "01_trusted_setup.md"))
		require.NoError(t, err)

		want := `---
source: https://example.com/ch1
title: Trusted Setup
fetched: 2026-03-14
---

# Trusted Setup

Body.
`
		assert.Equal(t, want, string(data))
	})

	t.Run("strips path separators from the filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		chapter := &bookmirror.Chapter{
			Title:    "Sneaky",
			URL:      "https://example.com/x",
			Filename: "../escape.md",
		}
		require.NoError(t, w.WriteChapter(chapter, "content"))

		_, err := os.Stat(filepath.Join(dir, "escape.md"))
		require.NoError(t, err, "chapter must land inside the book directory")
	})
}
