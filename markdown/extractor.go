package markdown

import (
	"strings"

	"github.com/fwojciec/bookmirror"
)

// Ensure Extractor implements bookmirror.Extractor at compile time.
var _ bookmirror.Extractor = (*Extractor)(nil)

// Extractor passes markdown chapter bodies through unchanged. The title is
// taken from the first top-level heading when present.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the content unchanged.
func (e *Extractor) Extract(content string) (*bookmirror.ExtractResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "empty chapter body")
	}
	return &bookmirror.ExtractResult{
		Title:   firstHeading(content),
		Content: content,
	}, nil
}

// firstHeading returns the text of the first "# " heading, if any.
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
