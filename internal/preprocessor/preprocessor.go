package preprocessor

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/book"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/compat"
	"github.com/sinotca/mdbook-sinotca-flavord/internal/mathescape"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// Name is the preprocessor name reported to the host.
	Name = "mdbook-sinotca-flavord"
	// SupportedRenderer is the only renderer whose output goes through MathJax.
	SupportedRenderer = "html"
)

// TableNames lists the book.toml tables the preprocessor reads settings from.
var TableNames = []string{Name, "sinotca-flavord"}

// Options configures a Preprocessor.
type Options struct {
	// Threads bounds how many chapters are escaped at once (0 = GOMAXPROCS).
	Threads int
	// StrictVersion turns a host version mismatch into an error.
	StrictVersion bool
	Logger        *zap.Logger
}

// Result summarizes one Run.
type Result struct {
	Chapters int
	Changed  int
	Stats    mathescape.Stats
}

// Preprocessor escapes math regions in every chapter of a book.
type Preprocessor struct {
	threads int
	strict  bool
	log     *zap.Logger
}

// New returns a Preprocessor for opts.
func New(opts Options) *Preprocessor {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Preprocessor{
		threads: workerCount(opts.Threads),
		strict:  opts.StrictVersion,
		log:     log,
	}
}

func workerCount(threads int) int {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > 32 {
		threads = 32
	}
	return threads
}

// Name returns the preprocessor name.
func (p *Preprocessor) Name() string { return Name }

// SupportsRenderer reports whether the host should run the preprocessor for
// renderer.
func (p *Preprocessor) SupportsRenderer(renderer string) bool {
	return renderer == SupportedRenderer
}

// CheckHost compares the calling mdBook version with the one this binary was
// built against. A mismatch is logged and only returned in strict mode.
func (p *Preprocessor) CheckHost(hctx *book.Context) error {
	err := compat.Check(compat.MdbookVersion, hctx.MdbookVersion)
	if err == nil {
		return nil
	}
	if errors.Is(err, compat.ErrIncompatible) && !p.strict {
		p.log.Warn("mdbook version mismatch",
			zap.String("built_against", compat.MdbookVersion),
			zap.String("called_from", hctx.MdbookVersion))
		return nil
	}
	return err
}

// Run escapes every chapter of b in place. Chapters are independent, so the
// result does not depend on the worker count.
func (p *Preprocessor) Run(ctx context.Context, b *book.Book) (Result, error) {
	chapters := b.Chapters()
	stats := make([]mathescape.Stats, len(chapters))
	changed := make([]bool, len(chapters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.threads)
	for i, ch := range chapters {
		i, ch := i, ch
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, st := mathescape.EscapeStats(ch.Content)
			changed[i] = out != ch.Content
			ch.Content = out
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("escape chapters: %w", err)
	}

	res := Result{Chapters: len(chapters)}
	for i := range stats {
		res.Stats.Add(stats[i])
		if changed[i] {
			res.Changed++
		}
	}
	p.log.Info("escaped math regions",
		zap.Int("chapters", res.Chapters),
		zap.Int("changed", res.Changed),
		zap.Int("display_regions", res.Stats.Display),
		zap.Int("inline_regions", res.Stats.Inline))
	return res, nil
}
