package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/passcheck/internal/model"
)

// DefaultConcurrency is used when no positive concurrency is configured.
const DefaultConcurrency = 8

// Analyzer is the subset of analyzer.Analyzer that the processor needs.
type Analyzer interface {
	Analyze(password string) *model.AnalysisResult
}

// Processor runs an Analyzer over many passwords.
//
// Design decision: results are written into a slice indexed by input
// position instead of being appended as goroutines finish. Reports refer
// to passwords by line number only, so the order must survive concurrent
// execution without keeping the passwords next to their results.
type Processor struct {
	// analyzer scores each password. It must be safe for concurrent use.
	analyzer Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level progress messages. Passwords are
	// never passed to it.
	logger *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor for a.
func NewProcessor(a Analyzer, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    a,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Process analyzes passwords and returns one result per input, in order.
// If ctx is cancelled, unscheduled entries are left nil and ctx.Err() is returned.
func (p *Processor) Process(ctx context.Context, passwords []string) ([]*model.AnalysisResult, error) {
	results := make([]*model.AnalysisResult, len(passwords))

	// Each goroutine writes only its own index.
	err := p.ProcessWithCallback(ctx, passwords, func(result *model.AnalysisResult, index int) {
		results[index] = result
	})

	return results, err
}

// ProcessWithCallback analyzes passwords and calls callback as each one
// completes. The callback runs on worker goroutines and must be safe for
// concurrent use.
func (p *Processor) ProcessWithCallback(
	ctx context.Context,
	passwords []string,
	callback func(result *model.AnalysisResult, index int),
) error {
	p.logger.Debug("starting batch analysis",
		"total", len(passwords),
		"concurrency", p.concurrency,
	)
	startTime := time.Now()

	// gctx is cancelled by Wait, so the caller's ctx decides the final error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, password := range passwords {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			callback(p.analyzer.Analyze(password), i)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	p.logger.Debug("batch analysis complete",
		"total", len(passwords),
		"elapsed", time.Since(startTime),
	)

	return err
}
