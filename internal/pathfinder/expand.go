package pathfinder

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/wikipath/internal/metrics"
	"github.com/persistorai/wikipath/internal/models"
)

// Skip reasons carried on a Neighbor.
const (
	skipNotFound = "not_found"
	skipError    = "error"
)

// Neighbor is the resolution outcome of one outbound link. A skipped
// neighbor is never traversed; the search carries on with the rest.
type Neighbor struct {
	Title  string
	ID     models.PageID
	Skip   bool
	Reason string
}

// expander composes the Resolver and Fetcher into "neighbors of X".
type expander struct {
	resolver    *Resolver
	fetcher     *Fetcher
	log         *logrus.Entry
	concurrency int
}

// links returns the outbound titles of id. A fetch failure counts as having
// no links; only context cancellation is returned as an error.
func (e *expander) links(ctx context.Context, id models.PageID) ([]string, error) {
	titles, err := e.fetcher.Neighbors(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		metrics.NeighborsSkipped.WithLabelValues("fetch_error").Inc()
		e.log.WithError(err).WithField("page_id", id).Warn("link fetch failed, treating page as a dead end")

		return nil, nil
	}

	return titles, nil
}

// resolve turns one link title into a Neighbor.
func (e *expander) resolve(ctx context.Context, title string) Neighbor {
	id, err := e.resolver.Resolve(ctx, title)
	if err == nil {
		return Neighbor{Title: title, ID: id}
	}

	reason := skipError
	if errors.Is(err, ErrNotFound) {
		reason = skipNotFound
	}

	metrics.NeighborsSkipped.WithLabelValues(reason).Inc()
	e.log.WithError(err).WithField("title", title).Debug("skipping neighbor")

	return Neighbor{Title: title, Skip: true, Reason: reason}
}

// expand resolves every outbound link of id with bounded parallelism. The
// result keeps source order regardless of completion order.
func (e *expander) expand(ctx context.Context, id models.PageID) ([]Neighbor, error) {
	titles, err := e.links(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, len(titles))

	var g errgroup.Group
	g.SetLimit(e.concurrency)

	for i, title := range titles {
		g.Go(func() error {
			out[i] = e.resolve(ctx, title)
			return nil
		})
	}

	_ = g.Wait() // workers never fail; skips are recorded per neighbor.

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
