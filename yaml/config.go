// Package yaml loads mirroring configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/bookmirror"
	"gopkg.in/yaml.v3"
)

// Config declares the books to mirror plus fetch settings shared by all of
// them. Per-book fields override the shared ones.
type Config struct {
	// OutputDir is prepended to every book's relative output directory.
	OutputDir string `yaml:"output_dir"`

	// AssetsDir names the asset subdirectory for books that do not set
	// their own.
	AssetsDir string `yaml:"assets_dir"`

	// Delay is the politeness delay between requests to the same domain.
	Delay Duration `yaml:"delay"`

	// Timeout bounds each HTTP request.
	Timeout Duration `yaml:"timeout"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent"`

	Books []bookmirror.Book `yaml:"books"`
}

// BookNamed returns the configured book with the given name.
func (c *Config) BookNamed(name string) (*bookmirror.Book, bool) {
	for i := range c.Books {
		if c.Books[i].Name == name {
			return &c.Books[i], true
		}
	}
	return nil, false
}

// Load reads, defaults, and validates configuration from a YAML file.
func Load(path string) (*Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return parse(fh)
}

func parse(r io.Reader) (*Config, error) {
	cfg := &Config{
		AssetsDir: "assets",
		Delay:     DurationFrom(time.Second),
		Timeout:   DurationFrom(10 * time.Second),
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "parse config: %s", err)
	}

	if len(cfg.Books) == 0 {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "config declares no books")
	}

	for i := range cfg.Books {
		book := &cfg.Books[i]
		if book.AssetsDir == "" {
			book.AssetsDir = cfg.AssetsDir
		}
		book.ApplyDefaults()
		if cfg.OutputDir != "" && !filepath.IsAbs(book.OutDir) {
			book.OutDir = filepath.Join(cfg.OutputDir, book.OutDir)
		}
		if err := book.Validate(); err != nil {
			return nil, err
		}
		if !book.Shape.Known() {
			return nil, bookmirror.Errorf(bookmirror.EINVALID, "book %q: unknown shape %q", book.Name, book.Shape)
		}
	}

	return cfg, nil
}
