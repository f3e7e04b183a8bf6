package bookmirror_test

import (
	"testing"

	"github.com/fwojciec/bookmirror"
	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     string
		pageURL string
		baseURL string
		want    string
	}{
		{
			name:    "absolute reference is returned unchanged",
			ref:     "https://cdn.example.com/pic.png",
			pageURL: "https://example.com/ch1.html",
			baseURL: "https://example.com/",
			want:    "https://cdn.example.com/pic.png",
		},
		{
			name:    "relative reference resolves against the page URL",
			ref:     "images/pic.png",
			pageURL: "https://example.com/book/ch1.html",
			baseURL: "https://other.example.com/",
			want:    "https://example.com/book/images/pic.png",
		},
		{
			name:    "page URL takes precedence over the base URL",
			ref:     "../pic.png",
			pageURL: "https://example.com/book/deep/ch1.html",
			baseURL: "https://example.com/",
			want:    "https://example.com/book/pic.png",
		},
		{
			name:    "base URL is the fallback without page context",
			ref:     "pic.png",
			pageURL: "",
			baseURL: "https://example.com/book/",
			want:    "https://example.com/book/pic.png",
		},
		{
			name:    "root-relative reference resolves against the host",
			ref:     "/static/pic.png",
			pageURL: "https://example.com/book/ch1.html",
			baseURL: "",
			want:    "https://example.com/static/pic.png",
		},
		{
			name:    "empty reference resolves to nothing",
			ref:     "",
			pageURL: "https://example.com/ch1.html",
			baseURL: "https://example.com/",
			want:    "",
		},
		{
			name:    "no usable base resolves to nothing",
			ref:     "pic.png",
			pageURL: "",
			baseURL: "",
			want:    "",
		},
		{
			name:    "protocol-relative reference adopts the page scheme",
			ref:     "//cdn.example.com/pic.png",
			pageURL: "https://example.com/ch1.html",
			baseURL: "",
			want:    "https://cdn.example.com/pic.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bookmirror.ResolveURL(tt.ref, tt.pageURL, tt.baseURL)
			assert.Equal(t, tt.want, got)
		})
	}
}
