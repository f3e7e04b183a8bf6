// Package crawl provides book mirroring orchestration. It coordinates TOC
// resolution, chapter fetching, content conversion and output writes, and
// reports progress through callbacks.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/bookmirror"
)

// extractionPlaceholder is written in place of chapter content that could
// not be extracted.
const extractionPlaceholder = "*Error: Could not extract content.*"

// Crawler orchestrates mirroring a book into its output directory.
type Crawler struct {
	Fetcher bookmirror.Fetcher
	Sources bookmirror.SourceRegistry
	Writer  bookmirror.BookWriter
	Limiter bookmirror.DomainLimiter

	// RetryDelays overrides the fetch retry backoff. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logf, when set, receives retry diagnostics.
	Logf LogFunc
}

// Result holds the outcome of a mirror run.
type Result struct {
	Shape  bookmirror.Shape
	Total  int
	Saved  int
	Failed int
	Bytes  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a mirror run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting mirror progress.
type ProgressFunc func(event ProgressEvent)

// Mirror crawls the book's chapters in TOC order and writes the output
// tree. The index is written before any chapter is fetched, so it reflects
// the TOC alone. Per-chapter failures are reported through progress and
// skipped; only an unfetchable or empty table of contents aborts the run.
func (c *Crawler) Mirror(ctx context.Context, book *bookmirror.Book, progress ProgressFunc) (*Result, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}

	filter, err := bookmirror.CompileFilter(book.Filter)
	if err != nil {
		return nil, err
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	if err := c.wait(ctx, book.TocURL); err != nil {
		return nil, err
	}
	tocContent, err := FetchWithRetryDelays(ctx, book.TocURL, c.Fetcher.Fetch, c.Logf, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch TOC %s: %w", book.TocURL, err)
	}

	shape, source, err := c.source(book, tocContent)
	if err != nil {
		return nil, err
	}

	chapters, err := source.TOC.ResolveTOC(tocContent, book.TocURL)
	if err != nil {
		return nil, fmt.Errorf("resolve TOC %s: %w", book.TocURL, err)
	}
	chapters = applyFilter(chapters, filter)
	if len(chapters) == 0 {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "no chapters found at %s", book.TocURL)
	}

	disambiguateFilenames(chapters)

	if err := c.Writer.WriteIndex(book, chapters); err != nil {
		return nil, err
	}

	result := &Result{Shape: shape, Total: len(chapters)}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(chapters)})
	}

	for i, chapter := range chapters {
		if err := c.wait(ctx, chapter.URL); err != nil {
			return result, err
		}

		event := ProgressEvent{
			Completed: i + 1,
			Total:     len(chapters),
			Title:     chapter.Title,
			URL:       chapter.URL,
		}

		content, err := FetchWithRetryDelays(ctx, chapter.URL, c.Fetcher.Fetch, c.Logf, delays)
		if err != nil {
			result.Failed++
			if progress != nil {
				event.Type = ProgressFailed
				event.Error = err
				progress(event)
			}
			continue
		}

		body, convErr := convertChapter(ctx, source, content, chapter.URL)
		if convErr != nil {
			// The chapter file is still written, with a visible
			// placeholder, so the index never points at a missing file.
			body = extractionPlaceholder
		}

		if err := c.Writer.WriteChapter(chapter, body); err != nil {
			convErr = err
		}

		if convErr != nil {
			result.Failed++
			if progress != nil {
				event.Type = ProgressFailed
				event.Error = convErr
				progress(event)
			}
			continue
		}

		result.Saved++
		result.Bytes += len(body)
		if progress != nil {
			event.Type = ProgressCompleted
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(chapters), Total: len(chapters)})
	}

	return result, nil
}

// source picks the shape-specific components, auto-detecting from TOC
// content when the book does not pin a shape.
func (c *Crawler) source(book *bookmirror.Book, tocContent string) (bookmirror.Shape, *bookmirror.Source, error) {
	if book.Shape == bookmirror.ShapeUnknown {
		shape, source := c.Sources.GetForContent(tocContent)
		return shape, source, nil
	}

	source, ok := c.Sources.Get(book.Shape)
	if !ok {
		return "", nil, bookmirror.Errorf(bookmirror.EINVALID, "unsupported shape %q", book.Shape)
	}
	return book.Shape, source, nil
}

// convertChapter runs extraction and conversion for one chapter body.
func convertChapter(ctx context.Context, source *bookmirror.Source, content, pageURL string) (string, error) {
	extracted, err := source.Extractor.Extract(content)
	if err != nil {
		return "", err
	}
	return source.Converter.Convert(ctx, extracted.Content, pageURL)
}

// wait applies the politeness delay for the URL's host.
func (c *Crawler) wait(ctx context.Context, rawURL string) error {
	if c.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.Limiter.Wait(ctx, u.Host)
}

// applyFilter drops chapters whose URL does not pass the filter.
func applyFilter(chapters []*bookmirror.Chapter, filter *bookmirror.ChapterFilter) []*bookmirror.Chapter {
	if filter == nil {
		return chapters
	}
	kept := chapters[:0]
	for _, chapter := range chapters {
		if filter.Match(chapter.URL) {
			kept = append(kept, chapter)
		}
	}
	return kept
}

// disambiguateFilenames enforces unique chapter filenames by prefixing
// later collisions with their position.
func disambiguateFilenames(chapters []*bookmirror.Chapter) {
	seen := make(map[string]bool, len(chapters))
	for i, chapter := range chapters {
		name := chapter.Filename
		for seen[name] {
			name = fmt.Sprintf("%02d_%s", i+1, name)
		}
		seen[name] = true
		chapter.Filename = name
	}
}
