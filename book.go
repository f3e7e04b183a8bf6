package bookmirror

import (
	"net/url"
	"path"
	"strings"
)

// Shape identifies the publishing layout of a book source. The shape
// determines how the table of contents is parsed and how chapter content
// is extracted.
type Shape string

// Supported source shapes.
const (
	ShapeUnknown  Shape = ""
	ShapeMarkdown Shape = "markdown"
	ShapeMdBook   Shape = "mdbook"
	ShapeBricks   Shape = "bricks"
	ShapeGeneric  Shape = "generic"
)

// Known reports whether the shape is one bookmirror supports. The unknown
// shape counts as known since it requests auto-detection.
func (s Shape) Known() bool {
	switch s {
	case ShapeUnknown, ShapeMarkdown, ShapeMdBook, ShapeBricks, ShapeGeneric:
		return true
	default:
		return false
	}
}

// Book represents a remote book to be mirrored into a local directory.
type Book struct {
	// Name is a short identifier used to derive defaults such as the
	// output directory.
	Name string `yaml:"name"`

	// Title is the human-readable title written to the index file.
	Title string `yaml:"title"`

	// Shape selects the source layout. Empty means auto-detect.
	Shape Shape `yaml:"shape"`

	// TocURL locates the table-of-contents page.
	TocURL string `yaml:"toc_url"`

	// BaseURL anchors relative references that lack page context.
	// Defaults to the directory of TocURL.
	BaseURL string `yaml:"base_url"`

	// OutDir is the directory the mirrored book is written to.
	OutDir string `yaml:"out_dir"`

	// AssetsDir is the name of the asset subdirectory inside OutDir.
	AssetsDir string `yaml:"assets_dir"`

	// Filter optionally restricts chapters to URLs matching any of the
	// given regular expressions.
	Filter []string `yaml:"filter"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.TocURL == "" {
		return Errorf(EINVALID, "book TOC URL required")
	}
	if b.OutDir == "" {
		return Errorf(EINVALID, "book output directory required")
	}
	return nil
}

// ApplyDefaults fills derivable fields that were left empty.
func (b *Book) ApplyDefaults() {
	if b.Name == "" {
		b.Name = nameFromURL(b.TocURL)
	}
	if b.Title == "" {
		b.Title = b.Name
	}
	if b.BaseURL == "" {
		b.BaseURL = baseOfURL(b.TocURL)
	}
	if b.OutDir == "" {
		b.OutDir = b.Name
	}
	if b.AssetsDir == "" {
		b.AssetsDir = "assets"
	}
}

// nameFromURL derives a filesystem-friendly identifier from a URL.
func nameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "book"
	}
	name := strings.TrimPrefix(u.Host, "www.")
	if p := strings.Trim(u.Path, "/"); p != "" {
		name += "_" + strings.ReplaceAll(p, "/", "_")
	}
	return name
}

// baseOfURL returns the URL with its last path segment removed, so relative
// references resolve the way they would from a page in that directory.
func baseOfURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	if u.Path == "" || u.Path == "/" {
		u.Path = "/"
		return u.String()
	}
	if strings.HasSuffix(u.Path, "/") {
		return u.String()
	}
	u.Path = path.Dir(u.Path)
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
