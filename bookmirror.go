// Package bookmirror provides a CLI-based tool for mirroring remotely
// hosted, multi-page books into local, self-contained directory trees.
// It resolves a book's table of contents, fetches each chapter, converts
// content to markdown, and materializes embedded assets locally so the
// mirrored book remains readable offline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package bookmirror
