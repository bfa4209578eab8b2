package pathfinder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/metrics"
	"github.com/persistorai/wikipath/internal/models"
)

const defaultConcurrency = 8

// Options configures a Finder.
type Options struct {
	Strategy    models.Strategy
	MaxDepth    int // DFS only
	MaxVisited  int // BFS only; 0 means unlimited
	Concurrency int // parallel neighbor resolutions per BFS expansion
}

// Option configures a Finder.
type Option func(*Options)

// WithStrategy selects breadth-first or depth-first search.
func WithStrategy(s models.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMaxDepth sets the depth budget for depth-first search.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithMaxVisited caps the number of pages breadth-first search may discover.
func WithMaxVisited(n int) Option {
	return func(o *Options) { o.MaxVisited = n }
}

// WithConcurrency bounds the number of parallel title resolutions.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// Finder runs one traversal. Create a new Finder per run; its caches are
// never shared with other runs.
type Finder struct {
	opts     Options
	log      *logrus.Entry
	resolver *Resolver
	fetcher  *Fetcher
	expander *expander
	expanded int
}

// New creates a Finder reading the graph from source.
func New(source LinkSource, log *logrus.Entry, opts ...Option) *Finder {
	o := Options{
		Strategy:    models.DefaultStrategy,
		MaxDepth:    models.DefaultDepth,
		Concurrency: defaultConcurrency,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}

	f := &Finder{
		opts:     o,
		log:      log,
		resolver: NewResolver(source),
		fetcher:  NewFetcher(source),
	}
	f.expander = &expander{
		resolver:    f.resolver,
		fetcher:     f.fetcher,
		log:         log,
		concurrency: o.Concurrency,
	}

	return f
}

// Find searches for a path from start to dest. Both endpoints are resolved
// before any traversal step; a failure for either aborts the run. A missing
// path is reported through PathResult.Found, not as an error.
func (f *Finder) Find(ctx context.Context, start, dest string) (*models.PathResult, error) {
	if _, err := models.ParseStrategy(string(f.opts.Strategy)); err != nil {
		return nil, err
	}
	if f.opts.MaxDepth < 0 {
		return nil, models.ErrNegativeDepth
	}

	startID, err := f.resolver.Resolve(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("resolving start: %w", err)
	}

	destID, err := f.resolver.Resolve(ctx, dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination: %w", err)
	}

	result := &models.PathResult{
		From:     f.title(startID, start),
		To:       f.title(destID, dest),
		Strategy: f.opts.Strategy,
	}
	if f.opts.Strategy == models.StrategyDFS {
		result.MaxDepth = f.opts.MaxDepth
	}

	if startID == destID {
		result.Found = true
		result.Titles = []string{result.From}
		return result, nil
	}

	var (
		trail  []models.PageID
		reason string
	)

	switch f.opts.Strategy {
	case models.StrategyBFS:
		trail, reason, err = f.breadthFirst(ctx, startID, destID)
	default:
		trail, reason, err = f.depthFirst(ctx, startID, destID)
	}

	result.Expanded = f.expanded
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", f.opts.Strategy, err)
	}

	if trail == nil {
		result.Reason = reason
		return result, nil
	}

	result.Found = true
	result.Hops = len(trail) - 1
	result.Titles = make([]string, len(trail))
	for i, id := range trail {
		result.Titles[i] = f.title(id, id.String())
	}

	return result, nil
}

// Expanded returns the number of pages whose links were listed so far.
func (f *Finder) Expanded() int { return f.expanded }

func (f *Finder) title(id models.PageID, fallback string) string {
	if t, ok := f.resolver.Title(id); ok {
		return t
	}
	return fallback
}

func (f *Finder) markExpanded() {
	f.expanded++
	metrics.NodesExpanded.WithLabelValues(string(f.opts.Strategy)).Inc()
}
