// Package goldmark renders a mirrored book directory into a single HTML
// document.
package goldmark

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/bookmirror"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Ensure Renderer implements bookmirror.Renderer at compile time.
var _ bookmirror.Renderer = (*Renderer)(nil)

// Renderer converts the chapter files of a mirrored book into one
// self-contained HTML document, suitable for reading offline or printing
// to PDF.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GitHub-flavored markdown support.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render reads the chapter files under dir in filename order and writes a
// single HTML document to out. The index file is skipped; chapter
// frontmatter is consumed and surfaces as a source comment per chapter.
func (r *Renderer) Render(ctx context.Context, dir, title string, out io.Writer) error {
	files, err := chapterFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return bookmirror.Errorf(bookmirror.ENOTFOUND, "no chapters found in %s", dir)
	}

	var body bytes.Buffer
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}

		meta, content := splitFrontmatter(data)

		var rendered bytes.Buffer
		if err := r.md.Convert(content, &rendered); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		body.WriteString("<section class=\"chapter\">\n")
		if meta.Source != "" {
			fmt.Fprintf(&body, "<!-- source: %s -->\n", meta.Source)
		}
		body.Write(rendered.Bytes())
		body.WriteString("</section>\n")
	}

	return writeDocument(out, title, body.Bytes())
}

// chapterFiles lists the markdown chapter files in dir, sorted by name.
// The index file is not a chapter.
func chapterFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), "readme") {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

type frontmatter struct {
	Source string `yaml:"source"`
	Title  string `yaml:"title"`
}

// splitFrontmatter strips a leading YAML frontmatter block from data and
// returns its parsed fields plus the remaining content. Data without a
// well-formed block is returned unchanged.
func splitFrontmatter(data []byte) (frontmatter, []byte) {
	var meta frontmatter
	if !bytes.HasPrefix(data, []byte("---\n")) {
		return meta, data
	}
	rest := data[4:]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return meta, data
	}
	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return frontmatter{}, data
	}
	return meta, rest[end+5:]
}

func writeDocument(out io.Writer, title string, body []byte) error {
	escaped := html.EscapeString(title)
	if _, err := fmt.Fprintf(out, documentHeader, escaped, escaped); err != nil {
		return err
	}
	if _, err := out.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(out, documentFooter)
	return err
}

const documentHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 46em; margin: 0 auto; padding: 2em 1em; font-family: Georgia, serif; line-height: 1.6; }
pre { background: #f6f8fa; padding: 1em; overflow-x: auto; }
code { font-family: ui-monospace, monospace; font-size: 0.9em; }
img { max-width: 100%%; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
section.chapter { page-break-after: always; }
</style>
</head>
<body>
<h1>%s</h1>
`

const documentFooter = `</body>
</html>
`
