// Package htmltomarkdown converts extracted HTML regions to markdown,
// materializing embedded images as the conversion encounters them.
package htmltomarkdown

import (
	"context"
	"fmt"
	"strings"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure Converter implements bookmirror.Converter at compile time.
var _ bookmirror.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to markdown. Image
// references are routed through an AssetStore and replaced with whatever
// path it returns, so converted chapters point at local asset copies.
type Converter struct {
	assets bookmirror.AssetStore
}

// NewConverter creates a new Converter that materializes images through
// assets.
func NewConverter(assets bookmirror.AssetStore) *Converter {
	return &Converter{assets: assets}
}

// Convert transforms HTML content into markdown. The page URL anchors
// relative image references; the context bounds the downloads they trigger.
func (c *Converter) Convert(ctx context.Context, content, pageURL string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", bookmirror.Errorf(bookmirror.EINVALID, "empty HTML input")
	}

	conv := htmltomd.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	conv.AddRules(c.imageRule(ctx, pageURL))

	return conv.ConvertString(content)
}

// imageRule replaces img elements with markdown image syntax pointing at
// the materialized local copy, preserving alt text exactly. Each conversion
// builds its own rule since the page URL differs per chapter.
func (c *Converter) imageRule(ctx context.Context, pageURL string) htmltomd.Rule {
	return htmltomd.Rule{
		Filter: []string{"img"},
		Replacement: func(_ string, selec *goquery.Selection, _ *htmltomd.Options) *string {
			src, _ := selec.Attr("src")
			alt, _ := selec.Attr("alt")

			local, _ := c.assets.Materialize(ctx, src, pageURL)
			out := fmt.Sprintf("![%s](%s)", alt, local)
			return &out
		},
	}
}
