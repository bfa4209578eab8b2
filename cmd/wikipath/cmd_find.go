package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/persistorai/wikipath/internal/models"
)

func runFind(cmd *cobra.Command, args []string) error {
	switch flagFmt {
	case "text", "json", "quiet":
	default:
		return newUsageError("--format must be text, json or quiet, got %q", flagFmt)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	log := s.cfg.NewLogger(os.Stderr)
	svc := newPathService(s.cfg, log)

	if flagMetricsFile != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(flagMetricsFile, prometheus.DefaultGatherer); werr != nil {
				log.WithError(werr).Warn("writing metrics file")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := svc.FindPath(ctx, models.PathRequest{
		From:     args[0],
		To:       args[1],
		Strategy: s.strategy,
		Depth:    s.depth,
	})
	if err != nil {
		if models.IsValidationError(err) {
			return &usageError{err: err}
		}
		return fmt.Errorf("search failed: %w", err)
	}

	return printResult(flagFmt, result)
}
