package main

import "fmt"

// ShapesCmd is the "shapes" subcommand.
type ShapesCmd struct{}

// Run executes the shapes command.
func (c *ShapesCmd) Run(deps *Dependencies) error {
	shapes := []struct {
		name string
		desc string
	}{
		{"markdown", "Raw markdown chapters linked from a README"},
		{"mdbook", "Books published with mdBook (sidebar navigation)"},
		{"bricks", "Bricks builder module pages, grouped by section"},
		{"generic", "Content-area chapter links, extraction fallback (default)"},
	}
	for _, s := range shapes {
		fmt.Fprintf(deps.Stdout, "%-10s %s\n", s.name, s.desc)
	}
	return nil
}
