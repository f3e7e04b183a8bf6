package bookmirror

import "context"

// Converter converts extracted chapter content into the output markup,
// materializing embedded image references as it goes so the result points
// at local asset copies.
type Converter interface {
	// Convert transforms content into markdown. The page URL anchors
	// relative references found in the content; the context bounds the
	// asset downloads the conversion triggers.
	Convert(ctx context.Context, content, pageURL string) (string, error)
}
