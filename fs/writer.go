package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/bookmirror"
)

// Ensure Writer implements bookmirror.BookWriter at compile time.
var _ bookmirror.BookWriter = (*Writer)(nil)

// IndexFilename is the name of the index document inside a book directory.
const IndexFilename = "README.md"

// Writer writes a mirrored book's index and chapter files to a directory.
type Writer struct {
	dir string
	now func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock overrides the clock used for provenance timestamps.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes into dir.
func NewWriter(dir string, opts ...WriterOption) *Writer {
	w := &Writer{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteIndex writes the index document: the book title and the ordered
// chapter list, grouped under section headings when chapters carry group
// labels. Every chapter is listed regardless of whether its fetch later
// succeeds.
func (w *Writer) WriteIndex(book *bookmirror.Book, chapters []*bookmirror.Chapter) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", book.Title)

	group := ""
	for _, ch := range chapters {
		if ch.Group != "" && ch.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = ch.Group
			fmt.Fprintf(&b, "## %s\n\n", group)
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", ch.Title, ch.Filename)
	}

	fmt.Fprintf(&b, "\nScraped from [%s](%s)\n", book.TocURL, book.TocURL)

	return os.WriteFile(filepath.Join(w.dir, IndexFilename), []byte(b.String()), 0644)
}

// WriteChapter writes one chapter file with provenance frontmatter. Any
// path separators in the chapter filename are discarded so chapters always
// land directly in the book directory.
func (w *Writer) WriteChapter(chapter *bookmirror.Chapter, content string) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	name := filepath.Base(filepath.FromSlash(chapter.Filename))
	doc := FormatChapter(chapter, content, w.now())
	return os.WriteFile(filepath.Join(w.dir, name), []byte(doc), 0644)
}

// FormatChapter formats a chapter document with YAML frontmatter recording
// where and when the content was fetched.
func FormatChapter(chapter *bookmirror.Chapter, content string, fetched time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(chapter.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(chapter.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(fetched.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}
