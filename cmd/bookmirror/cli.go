package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Mirror MirrorCmd `cmd:"" help:"Mirror a book into a local markdown directory"`
	Render RenderCmd `cmd:"" help:"Render a mirrored book into a single HTML file"`
	Shapes ShapesCmd `cmd:"" help:"List supported source shapes"`
}
