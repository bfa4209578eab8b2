package pathfinder

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/persistorai/wikipath/internal/metrics"
	"github.com/persistorai/wikipath/internal/models"
)

// Resolver maps titles to page IDs and remembers both directions for the
// lifetime of one run. Only successful lookups are cached.
type Resolver struct {
	source LinkSource

	mu      sync.RWMutex
	byTitle map[string]models.PageID
	byID    map[models.PageID]string
	group   singleflight.Group
}

// NewResolver creates a Resolver with empty caches.
func NewResolver(source LinkSource) *Resolver {
	return &Resolver{
		source:  source,
		byTitle: make(map[string]models.PageID),
		byID:    make(map[models.PageID]string),
	}
}

// Resolve returns the page ID for title. Concurrent misses for the same title
// share a single remote lookup.
func (r *Resolver) Resolve(ctx context.Context, title string) (models.PageID, error) {
	if id, ok := r.cached(title); ok {
		metrics.CacheLookupsTotal.WithLabelValues("title", "hit").Inc()
		return id, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("title", "miss").Inc()

	val, err, _ := r.group.Do(title, func() (any, error) {
		// Another caller may have populated the entry while we waited.
		if id, ok := r.cached(title); ok {
			return id, nil
		}

		lookup, err := r.source.LookupIdentifier(ctx, title)
		if err != nil {
			metrics.SourceCallsTotal.WithLabelValues("lookup", "error").Inc()
			return nil, &ResolutionError{Title: title, Err: err}
		}

		if !lookup.Found {
			metrics.SourceCallsTotal.WithLabelValues("lookup", "not_found").Inc()
			return nil, &NotFoundError{Title: title, Reason: lookup.Reason}
		}

		metrics.SourceCallsTotal.WithLabelValues("lookup", "ok").Inc()
		r.store(title, lookup)
		return lookup.ID, nil
	})
	if err != nil {
		return 0, err
	}

	id, ok := val.(models.PageID)
	if !ok {
		return 0, &ResolutionError{Title: title, Err: fmt.Errorf("unexpected singleflight result type %T", val)}
	}

	return id, nil
}

// Title returns the canonical title recorded for id.
func (r *Resolver) Title(id models.PageID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	return t, ok
}

func (r *Resolver) cached(title string) (models.PageID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byTitle[title]
	return id, ok
}

func (r *Resolver) store(title string, lookup models.Lookup) {
	canonical := lookup.CanonicalTitle
	if canonical == "" {
		canonical = title
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byTitle[title] = lookup.ID
	r.byTitle[canonical] = lookup.ID
	if _, ok := r.byID[lookup.ID]; !ok {
		r.byID[lookup.ID] = canonical
	}
}
