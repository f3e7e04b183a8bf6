package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bookmirror/fs"
	"github.com/fwojciec/bookmirror/goldmark"
)

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Dir   string `arg:"" type:"existingdir" help:"Mirrored book directory"`
	Title string `help:"Document title (default: the index heading)"`
	Out   string `short:"o" help:"Output HTML file (default: <dir>/<dirname>.html)"`
}

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	title := c.Title
	if title == "" {
		title = indexTitle(c.Dir)
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(c.Dir, filepath.Base(filepath.Clean(c.Dir))+".html")
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := goldmark.NewRenderer().Render(deps.Ctx, c.Dir, title, f); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rendered %s\n", out)
	return nil
}

// indexTitle extracts the book title from the index file heading. Falls
// back to the directory name.
func indexTitle(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, fs.IndexFilename))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if after, ok := strings.CutPrefix(line, "# "); ok {
				return strings.TrimSpace(after)
			}
		}
	}
	return filepath.Base(filepath.Clean(dir))
}
