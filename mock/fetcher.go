package mock

import (
	"context"
	"io"

	"github.com/fwojciec/bookmirror"
)

var _ bookmirror.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bookmirror.Fetcher.
type Fetcher struct {
	FetchFn    func(ctx context.Context, url string) (string, error)
	DownloadFn func(ctx context.Context, url string, dst io.Writer) (int64, error)
	CloseFn    func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Download(ctx context.Context, url string, dst io.Writer) (int64, error) {
	return f.DownloadFn(ctx, url, dst)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
