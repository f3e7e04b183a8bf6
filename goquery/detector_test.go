package goquery_test

import (
	"testing"

	"github.com/fwojciec/bookmirror"
	"github.com/fwojciec/bookmirror/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bookmirror.Shape
	}{
		{
			name:    "mdBook sidebar",
			content: `<html><body><nav id="sidebar"><ol class="chapter"><li class="chapter-item"><a href="ch1.html">One</a></li></ol></nav></body></html>`,
			want:    bookmirror.ShapeMdBook,
		},
		{
			name:    "Bricks module cards",
			content: `<html><body><div class="module-card"><a class="modules-item-title" href="/ch1">One</a></div></body></html>`,
			want:    bookmirror.ShapeBricks,
		},
		{
			name:    "Bricks element classes without cards",
			content: `<html><body><div class="brxe-post-content">text</div></body></html>`,
			want:    bookmirror.ShapeBricks,
		},
		{
			name:    "raw markdown TOC",
			content: "# Book\n\n- [One](01_one.md)\n- [Two](02_two.md)\n",
			want:    bookmirror.ShapeMarkdown,
		},
		{
			name:    "plain HTML page",
			content: `<html><body><main><a href="/ch1">One</a></main></body></html>`,
			want:    bookmirror.ShapeUnknown,
		},
		{
			name:    "empty content",
			content: "",
			want:    bookmirror.ShapeUnknown,
		},
		{
			name:    "HTML mentioning markdown files is not markdown",
			content: `<html><body><p>download [the file](x.md)</p></body></html>`,
			want:    bookmirror.ShapeUnknown,
		},
	}

	d := goquery.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, d.Detect(tt.content))
		})
	}
}
