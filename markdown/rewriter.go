package markdown

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/bookmirror"
)

// Ensure Rewriter implements bookmirror.Converter at compile time.
var _ bookmirror.Converter = (*Rewriter)(nil)

// imagePattern matches markdown image syntax: ![alt](src).
var imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// imgTagPattern matches raw HTML img tags embedded in markdown.
var imgTagPattern = regexp.MustCompile(`<img[^>]+>`)

// imgSrcPattern extracts the src attribute from an img tag.
var imgSrcPattern = regexp.MustCompile(`src=["']([^"']*)["']`)

// Rewriter is the Converter for markdown-native sources. The body is
// already in the target markup, so conversion reduces to materializing
// every image reference and substituting whatever path the asset store
// hands back, preserving alt text exactly.
type Rewriter struct {
	assets bookmirror.AssetStore
}

// NewRewriter creates a Rewriter that materializes images through assets.
func NewRewriter(assets bookmirror.AssetStore) *Rewriter {
	return &Rewriter{assets: assets}
}

// Convert rewrites image references in content to local asset paths.
func (r *Rewriter) Convert(ctx context.Context, content, pageURL string) (string, error) {
	out := imagePattern.ReplaceAllStringFunc(content, func(match string) string {
		m := imagePattern.FindStringSubmatch(match)
		alt, src := m[1], m[2]
		local, _ := r.assets.Materialize(ctx, src, pageURL)
		return fmt.Sprintf("![%s](%s)", alt, local)
	})

	out = imgTagPattern.ReplaceAllStringFunc(out, func(tag string) string {
		m := imgSrcPattern.FindStringSubmatch(tag)
		if m == nil || m[1] == "" {
			return tag
		}
		local, _ := r.assets.Materialize(ctx, m[1], pageURL)
		return strings.Replace(tag, m[1], local, 1)
	})

	return out, nil
}
