// Package fs provides file-based storage for mirrored books: the asset
// cache and the book output tree.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookmirror"
	"github.com/google/uuid"
)

// Ensure AssetStore implements bookmirror.AssetStore at compile time.
var _ bookmirror.AssetStore = (*AssetStore)(nil)

// AssetStore materializes remote assets under a book's output directory.
// The directory itself is the cache: a file that exists is authoritative
// and is never re-fetched or overwritten, so an asset referenced from many
// chapters is downloaded once and repeated runs of the same book perform
// no redundant asset downloads.
type AssetStore struct {
	dir     string // book output directory
	subdir  string // asset subdirectory name, e.g. "assets"
	baseURL string // fallback base for references without page context
	fetcher bookmirror.Fetcher
}

// NewAssetStore creates an AssetStore rooted at dir/subdir.
func NewAssetStore(dir, subdir, baseURL string, fetcher bookmirror.Fetcher) *AssetStore {
	return &AssetStore{
		dir:     dir,
		subdir:  subdir,
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// Materialize downloads the asset behind ref unless a local copy already
// exists, and returns the relative path chapters should reference. On
// failure the original ref comes back along with the error, so callers can
// substitute the returned value unconditionally.
func (s *AssetStore) Materialize(ctx context.Context, ref, pageURL string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", nil
	}

	resolved := bookmirror.ResolveURL(ref, pageURL, s.baseURL)
	if resolved == "" {
		return ref, bookmirror.Errorf(bookmirror.EINVALID, "unresolvable asset reference %q", ref)
	}

	name := AssetFilename(resolved)
	relPath := path.Join(s.subdir, name)
	fullPath := filepath.Join(s.dir, s.subdir, name)

	// An existing file is authoritative: no re-fetch, no overwrite.
	if _, err := os.Stat(fullPath); err == nil {
		return relPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return ref, err
	}

	// Download to a temporary name and rename into place so an interrupted
	// download never leaves a partial file behind posing as a cache hit.
	tmpPath := fullPath + "." + uuid.NewString() + ".part"
	f, err := os.Create(tmpPath)
	if err != nil {
		return ref, err
	}

	if _, err := s.fetcher.Download(ctx, resolved, f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return ref, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return ref, err
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		_ = os.Remove(tmpPath)
		return ref, err
	}

	return relPath, nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// AssetFilename derives the deterministic local filename for a resolved
// asset URL: the last path segment, percent-decoded, with runs of unsafe
// characters collapsed to single underscores. URLs without a usable
// segment get a name keyed on a hash of the URL, so the same asset still
// maps to the same file across runs.
func AssetFilename(resolvedURL string) string {
	var segment string
	if u, err := url.Parse(resolvedURL); err == nil {
		segment = path.Base(u.Path)
		if decoded, err := url.PathUnescape(segment); err == nil {
			segment = decoded
		}
	}

	name := unsafeNameChars.ReplaceAllString(segment, "_")
	if name == "" || name == "." || name == ".." || path.Ext(name) == "" || path.Ext(name) == "." {
		return fmt.Sprintf("image_%x.png", xxhash.Sum64String(resolvedURL))
	}
	return name
}
