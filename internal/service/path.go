// Package service provides the path search use case shared by the CLI and the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/metrics"
	"github.com/persistorai/wikipath/internal/models"
	"github.com/persistorai/wikipath/internal/pathfinder"
)

// PathOptions holds the service-wide search limits.
type PathOptions struct {
	Concurrency   int
	MaxVisited    int
	SearchTimeout time.Duration
}

// PathService runs path searches against a link source. Each call builds a
// fresh Finder, so no cache or traversal state survives between searches.
type PathService struct {
	source pathfinder.LinkSource
	log    *logrus.Logger
	opts   PathOptions
}

// NewPathService creates a PathService.
func NewPathService(source pathfinder.LinkSource, log *logrus.Logger, opts PathOptions) *PathService {
	return &PathService{source: source, log: log, opts: opts}
}

// FindPath validates req, normalizes its titles and runs one search.
func (s *PathService) FindPath(ctx context.Context, req models.PathRequest) (*models.PathResult, error) {
	from, err := pathfinder.NormalizeTitle(req.From)
	if err != nil {
		return nil, fmt.Errorf("start title: %w", err)
	}

	to, err := pathfinder.NormalizeTitle(req.To)
	if err != nil {
		return nil, fmt.Errorf("destination title: %w", err)
	}

	req.From, req.To = from, to
	if req.Strategy == "" {
		req.Strategy = models.DefaultStrategy
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.opts.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.SearchTimeout)
		defer cancel()
	}

	runID := uuid.NewString()
	log := s.log.WithFields(logrus.Fields{
		"run_id":   runID,
		"from":     req.From,
		"to":       req.To,
		"strategy": req.Strategy,
		"depth":    req.Depth,
	})
	log.Debug("path.search.start")

	finder := pathfinder.New(s.source, log,
		pathfinder.WithStrategy(req.Strategy),
		pathfinder.WithMaxDepth(req.Depth),
		pathfinder.WithMaxVisited(s.opts.MaxVisited),
		pathfinder.WithConcurrency(s.opts.Concurrency),
	)

	start := time.Now()
	result, err := finder.Find(ctx, req.From, req.To)
	elapsed := time.Since(start)

	outcome := searchOutcome(result, err)
	metrics.SearchDuration.WithLabelValues(string(req.Strategy), outcome).Observe(elapsed.Seconds())

	fields := logrus.Fields{
		"outcome":  outcome,
		"expanded": finder.Expanded(),
		"duration": elapsed.String(),
	}

	if err != nil {
		log.WithFields(fields).WithError(err).Warn("path.search.failed")
		return nil, err
	}

	result.RunID = runID
	log.WithFields(fields).WithField("hops", result.Hops).Info("path.search.done")

	return result, nil
}

func searchOutcome(result *models.PathResult, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, pathfinder.ErrNotFound):
		return "endpoint_not_found"
	case err != nil:
		return "error"
	case result.Found:
		return "found"
	default:
		return "not_found"
	}
}
