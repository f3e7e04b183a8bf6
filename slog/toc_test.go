package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/bookmirror"
	"github.com/fwojciec/bookmirror/mock"
	bookslog "github.com/fwojciec/bookmirror/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTocResolver_ResolveTOC(t *testing.T) {
	t.Parallel()

	t.Run("logs chapter count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TocResolver{
			ResolveTOCFn: func(content, tocURL string) ([]*bookmirror.Chapter, error) {
				return []*bookmirror.Chapter{
					{Title: "One", URL: "https://example.com/1.html", Filename: "01_one.md"},
					{Title: "Two", URL: "https://example.com/2.html", Filename: "02_two.md"},
				}, nil
			},
		}

		resolver := bookslog.NewLoggingTocResolver(inner, logger)
		chapters, err := resolver.ResolveTOC("<html></html>", "https://example.com/")

		require.NoError(t, err)
		assert.Len(t, chapters, 2)
		output := buf.String()
		assert.Contains(t, output, "toc resolved")
		assert.Contains(t, output, "chapters=2")
		assert.Contains(t, output, "url=https://example.com/")
	})
}
