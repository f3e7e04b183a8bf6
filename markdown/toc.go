// Package markdown implements the source components for books published as
// raw markdown files, such as book repositories served over raw content
// URLs. The table of contents is the repository README; chapter bodies are
// already markdown and only need their asset references localized.
package markdown

import (
	"path"
	"regexp"
	"strings"

	"github.com/fwojciec/bookmirror"
)

// Ensure Toc implements bookmirror.TocResolver at compile time.
var _ bookmirror.TocResolver = (*Toc)(nil)

// tocLinkPattern matches markdown links to .md files: [Title](path/file.md).
var tocLinkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?\.md)\)`)

// Toc resolves chapters from a markdown README's chapter links.
type Toc struct{}

// NewToc creates a new Toc.
func NewToc() *Toc {
	return &Toc{}
}

// ResolveTOC extracts [title](file.md) links in document order. Links to
// the README itself, absolute links pointing off the source tree, and
// repeated targets are skipped. Source filenames are kept verbatim so
// relative links between mirrored chapters keep working.
func (t *Toc) ResolveTOC(content, tocURL string) ([]*bookmirror.Chapter, error) {
	var chapters []*bookmirror.Chapter
	seen := make(map[string]bool)

	for _, m := range tocLinkPattern.FindAllStringSubmatch(content, -1) {
		title, href := m[1], m[2]

		// Some READMEs carry a stray paren inside the link target.
		href = strings.TrimPrefix(href, "(")

		if strings.Contains(href, "README.md") {
			continue
		}
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			continue
		}

		resolved := bookmirror.ResolveURL(href, tocURL, "")
		if resolved == "" || seen[resolved] {
			continue
		}
		seen[resolved] = true

		chapters = append(chapters, &bookmirror.Chapter{
			Title:    title,
			URL:      resolved,
			Filename: path.Base(href),
		})
	}

	return chapters, nil
}
