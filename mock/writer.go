package mock

import "github.com/fwojciec/bookmirror"

var _ bookmirror.BookWriter = (*BookWriter)(nil)

// BookWriter is a mock implementation of bookmirror.BookWriter.
type BookWriter struct {
	WriteIndexFn   func(book *bookmirror.Book, chapters []*bookmirror.Chapter) error
	WriteChapterFn func(chapter *bookmirror.Chapter, content string) error
}

func (w *BookWriter) WriteIndex(book *bookmirror.Book, chapters []*bookmirror.Chapter) error {
	return w.WriteIndexFn(book, chapters)
}

func (w *BookWriter) WriteChapter(chapter *bookmirror.Chapter, content string) error {
	return w.WriteChapterFn(chapter, content)
}
