package pathfinder

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/persistorai/wikipath/internal/metrics"
	"github.com/persistorai/wikipath/internal/models"
)

// Fetcher lists and caches the main-namespace outbound links of pages.
type Fetcher struct {
	source LinkSource

	mu    sync.RWMutex
	links map[models.PageID][]string
	group singleflight.Group
}

// NewFetcher creates a Fetcher with an empty cache.
func NewFetcher(source LinkSource) *Fetcher {
	return &Fetcher{
		source: source,
		links:  make(map[models.PageID][]string),
	}
}

// Neighbors returns the outbound link titles of id in source order.
// The returned slice is shared with the cache and must not be modified.
func (f *Fetcher) Neighbors(ctx context.Context, id models.PageID) ([]string, error) {
	if titles, ok := f.cached(id); ok {
		metrics.CacheLookupsTotal.WithLabelValues("links", "hit").Inc()
		return titles, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("links", "miss").Inc()

	val, err, _ := f.group.Do(id.String(), func() (any, error) {
		if titles, ok := f.cached(id); ok {
			return titles, nil
		}

		links, err := f.source.ListOutboundLinks(ctx, id)
		if err != nil {
			metrics.SourceCallsTotal.WithLabelValues("links", "error").Inc()
			return nil, &FetchError{ID: id, Err: err}
		}
		metrics.SourceCallsTotal.WithLabelValues("links", "ok").Inc()

		titles := filterLinks(links)

		f.mu.Lock()
		f.links[id] = titles
		f.mu.Unlock()

		return titles, nil
	})
	if err != nil {
		return nil, err
	}

	titles, ok := val.([]string)
	if !ok {
		return nil, &FetchError{ID: id, Err: fmt.Errorf("unexpected singleflight result type %T", val)}
	}

	return titles, nil
}

func (f *Fetcher) cached(id models.PageID) ([]string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	titles, ok := f.links[id]
	return titles, ok
}

// filterLinks keeps main-namespace titles, first occurrence wins.
func filterLinks(links []models.Link) []string {
	seen := make(map[string]struct{}, len(links))
	titles := make([]string, 0, len(links))

	for _, l := range links {
		if l.Namespace != models.MainNamespace || l.Title == "" {
			continue
		}
		if _, dup := seen[l.Title]; dup {
			continue
		}
		seen[l.Title] = struct{}{}
		titles = append(titles, l.Title)
	}

	return titles
}
