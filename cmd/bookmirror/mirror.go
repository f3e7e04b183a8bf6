package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/bookmirror"
	"github.com/fwojciec/bookmirror/crawl"
	"github.com/fwojciec/bookmirror/fs"
	"github.com/fwojciec/bookmirror/goquery"
	"github.com/fwojciec/bookmirror/htmltomarkdown"
	bookhttp "github.com/fwojciec/bookmirror/http"
	"github.com/fwojciec/bookmirror/markdown"
	"github.com/fwojciec/bookmirror/readability"
	bookslog "github.com/fwojciec/bookmirror/slog"
	"github.com/fwojciec/bookmirror/trafilatura"
	"github.com/fwojciec/bookmirror/yaml"
)

// MirrorCmd is the "mirror" subcommand.
type MirrorCmd struct {
	URL string `arg:"" optional:"" help:"Table of contents URL"`

	Config    string        `short:"c" type:"existingfile" help:"Mirror every book declared in a YAML config file"`
	Only      string        `help:"Mirror only the named book from the config"`
	Name      string        `help:"Book identifier (default: derived from the URL)"`
	Title     string        `help:"Book title for the index file (default: the name)"`
	Shape     string        `help:"Source shape: markdown, mdbook, bricks, generic (default: auto-detect)"`
	BaseURL   string        `name:"base-url" help:"Base URL for resolving relative references"`
	Out       string        `short:"o" env:"BOOKMIRROR_OUT" help:"Output directory (default: derived from the URL)"`
	AssetsDir string        `name:"assets-dir" default:"assets" help:"Asset subdirectory name"`
	Filter    []string      `short:"F" name:"filter" help:"Filter chapters by URL regex (repeatable)"`
	Delay     time.Duration `default:"1s" help:"Politeness delay between requests to the same domain"`
	Timeout   time.Duration `default:"10s" help:"HTTP request timeout"`
	Retries   int           `default:"3" help:"Retry attempts per failed fetch"`
	UserAgent string        `name:"user-agent" env:"BOOKMIRROR_USER_AGENT" help:"User-Agent header override"`
}

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	cfg, err := c.plan()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmirror.ErrorMessage(err))
		return err
	}

	opts := []bookhttp.Option{bookhttp.WithTimeout(cfg.Timeout.Duration)}
	if cfg.UserAgent != "" {
		opts = append(opts, bookhttp.WithUserAgent(cfg.UserAgent))
	}
	fetcher := bookslog.NewLoggingFetcher(bookhttp.NewFetcher(opts...), deps.Logger)
	defer fetcher.Close()

	limiter := crawl.NewDomainLimiter(cfg.Delay.Duration)

	var firstErr error
	for i := range cfg.Books {
		book := &cfg.Books[i]
		if err := c.mirrorBook(deps, fetcher, limiter, book); err != nil {
			fmt.Fprintf(deps.Stderr, "error mirroring %s: %v\n", book.Name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// plan resolves the set of books to mirror, either from a config file or
// from the command-line flags.
func (c *MirrorCmd) plan() (*yaml.Config, error) {
	if c.Config != "" {
		cfg, err := yaml.Load(c.Config)
		if err != nil {
			return nil, err
		}
		if c.Only != "" {
			book, ok := cfg.BookNamed(c.Only)
			if !ok {
				return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "no book named %q in %s", c.Only, c.Config)
			}
			cfg.Books = []bookmirror.Book{*book}
		}
		return cfg, nil
	}
	if c.Only != "" {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "--only requires --config")
	}

	if c.URL == "" {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "a TOC URL or --config is required")
	}

	book := bookmirror.Book{
		Name:      c.Name,
		Title:     c.Title,
		Shape:     bookmirror.Shape(c.Shape),
		TocURL:    c.URL,
		BaseURL:   c.BaseURL,
		OutDir:    c.Out,
		AssetsDir: c.AssetsDir,
		Filter:    c.Filter,
	}
	book.ApplyDefaults()
	if err := book.Validate(); err != nil {
		return nil, err
	}
	if !book.Shape.Known() {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "unknown shape %q", c.Shape)
	}

	return &yaml.Config{
		Delay:     yaml.DurationFrom(c.Delay),
		Timeout:   yaml.DurationFrom(c.Timeout),
		UserAgent: c.UserAgent,
		Books:     []bookmirror.Book{book},
	}, nil
}

func (c *MirrorCmd) mirrorBook(deps *Dependencies, fetcher bookmirror.Fetcher, limiter bookmirror.DomainLimiter, book *bookmirror.Book) error {
	fmt.Fprintf(deps.Stdout, "Mirroring %s (%s)\n", book.Title, book.TocURL)

	assets := bookslog.NewLoggingAssetStore(
		fs.NewAssetStore(book.OutDir, book.AssetsDir, book.BaseURL, fetcher),
		deps.Logger,
	)

	registry := buildRegistry(assets, deps)

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Sources:     registry,
		Writer:      fs.NewWriter(book.OutDir),
		Limiter:     limiter,
		RetryDelays: retryDelays(c.Retries),
		Logf: func(format string, args ...any) {
			deps.Logger.Debug(fmt.Sprintf(format, args...))
		},
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d chapters\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Title)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %v\n",
				event.Completed, event.Total, crawl.TruncateURL(event.URL, 60), event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the mirror completes
		}
	}

	result, err := crawler.Mirror(deps.Ctx, book, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d/%d chapters (%s) to %s\n",
		result.Saved, result.Total, crawl.FormatBytes(result.Bytes), book.OutDir)
	return nil
}

// retryDelays truncates the default backoff schedule to the requested
// number of retries. Zero retries yields a single attempt per fetch.
func retryDelays(retries int) []time.Duration {
	delays := crawl.DefaultRetryDelays()
	if retries < 0 {
		retries = 0
	}
	if retries < len(delays) {
		return delays[:retries]
	}
	return delays
}

// buildRegistry wires the shape-specific sources around a shared asset
// store. The generic source doubles as the detection fallback.
func buildRegistry(assets bookmirror.AssetStore, deps *Dependencies) bookmirror.SourceRegistry {
	htmlConv := htmltomarkdown.NewConverter(assets)

	generic := &bookmirror.Source{
		TOC: bookslog.NewLoggingTocResolver(goquery.NewGenericToc(), deps.Logger),
		Extractor: &bookmirror.FallbackExtractor{
			Extractors: []bookmirror.Extractor{
				trafilatura.NewExtractor(),
				readability.NewExtractor(),
			},
		},
		Converter: htmlConv,
	}

	registry := goquery.NewRegistry(goquery.NewDetector(), generic)
	registry.Register(bookmirror.ShapeMarkdown, &bookmirror.Source{
		TOC:       bookslog.NewLoggingTocResolver(markdown.NewToc(), deps.Logger),
		Extractor: markdown.NewExtractor(),
		Converter: markdown.NewRewriter(assets),
	})
	registry.Register(bookmirror.ShapeMdBook, &bookmirror.Source{
		TOC:       bookslog.NewLoggingTocResolver(goquery.NewMdBookToc(), deps.Logger),
		Extractor: goquery.NewMdBookExtractor(),
		Converter: htmlConv,
	})
	registry.Register(bookmirror.ShapeBricks, &bookmirror.Source{
		TOC:       bookslog.NewLoggingTocResolver(goquery.NewBricksToc(), deps.Logger),
		Extractor: goquery.NewBricksExtractor(),
		Converter: htmlConv,
	})
	registry.Register(bookmirror.ShapeGeneric, generic)

	deps.Logger.Debug("registered shapes", "shapes", registry.List())
	return registry
}
