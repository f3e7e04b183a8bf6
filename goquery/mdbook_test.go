package goquery_test

import (
	"testing"

	"github.com/fwojciec/bookmirror"
	"github.com/fwojciec/bookmirror/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mdbookTocHTML = `<!DOCTYPE html>
<html>
<head><title>Example Book</title></head>
<body>
<nav id="sidebar" class="sidebar">
  <ol class="chapter">
    <li class="chapter-item"><a href="preface.html">Preface</a></li>
    <li class="chapter-item"><a href="ch01-intro.html">Introduction</a></li>
    <li class="chapter-item"><a href="#anchors-are-skipped">Anchors</a></li>
    <li class="chapter-item"><a href="advanced/ch02.html">Advanced Topics</a></li>
  </ol>
</nav>
<main>content</main>
</body>
</html>`

func TestMdBookToc_ResolveTOC(t *testing.T) {
	t.Parallel()

	t.Run("resolves sidebar chapters in document order", func(t *testing.T) {
		t.Parallel()

		toc := goquery.NewMdBookToc()
		chapters, err := toc.ResolveTOC(mdbookTocHTML, "https://book.example.com/index.html")
		require.NoError(t, err)
		require.Len(t, chapters, 3)

		assert.Equal(t, "Preface", chapters[0].Title)
		assert.Equal(t, "https://book.example.com/preface.html", chapters[0].URL)
		assert.Equal(t, "01_preface.md", chapters[0].Filename)

		assert.Equal(t, "Introduction", chapters[1].Title)
		assert.Equal(t, "https://book.example.com/ch01-intro.html", chapters[1].URL)
		assert.Equal(t, "02_introduction.md", chapters[1].Filename)

		assert.Equal(t, "Advanced Topics", chapters[2].Title)
		assert.Equal(t, "https://book.example.com/advanced/ch02.html", chapters[2].URL)
		assert.Equal(t, "03_advanced_topics.md", chapters[2].Filename)
	})

	t.Run("missing sidebar fails with ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		toc := goquery.NewMdBookToc()
		_, err := toc.ResolveTOC(`<html><body><main>no nav</main></body></html>`, "https://book.example.com/")
		require.Error(t, err)
		assert.Equal(t, bookmirror.ENOTFOUND, bookmirror.ErrorCode(err))
	})
}
