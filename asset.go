package bookmirror

import "context"

// AssetStore materializes remote assets as local files under a book's
// output directory.
//
// Materialize resolves ref against the page that contained it, derives a
// deterministic local filename, and downloads the asset unless a local copy
// already exists. An existing file is authoritative and causes no network
// traffic, so the same asset referenced from many chapters is fetched once
// and repeated runs are idempotent.
//
// The returned string is always usable in converted content: the local
// relative path on success, "" for an empty ref, or the original reference
// unchanged when the asset could not be materialized. The error, when
// non-nil, explains why the original reference was left in place; callers
// substitute the returned string either way.
type AssetStore interface {
	Materialize(ctx context.Context, ref, pageURL string) (string, error)
}
