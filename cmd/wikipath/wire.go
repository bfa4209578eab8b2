package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/config"
	"github.com/persistorai/wikipath/internal/mediawiki"
	"github.com/persistorai/wikipath/internal/service"
)

// retryBase is the first backoff interval for retried upstream requests.
const retryBase = 500 * time.Millisecond

func newPathService(cfg *config.Config, log *logrus.Logger) *service.PathService {
	client := mediawiki.New(cfg.APIURL,
		mediawiki.WithTimeout(cfg.Timeout),
		mediawiki.WithUserAgent(cfg.UserAgent),
		mediawiki.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		mediawiki.WithRetries(cfg.MaxRetries, retryBase),
		mediawiki.WithLogger(log),
	)

	return service.NewPathService(client, log, service.PathOptions{
		Concurrency:   cfg.Concurrency,
		MaxVisited:    cfg.MaxVisited,
		SearchTimeout: cfg.SearchTimeout,
	})
}
