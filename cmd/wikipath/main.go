// Command wikipath finds a chain of article links between two Wikipedia pages.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/wikipath/internal/config"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	flagStrategy    string
	flagDepth       int
	flagFmt         string
	flagAPIURL      string
	flagTimeout     string
	flagConcurrency int
	flagLogLevel    string
	flagMetricsFile string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("wikipath version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("wikipath version %s", config.Version)
}

// usageError marks a failure caused by bad flags or arguments. Such failures
// are reported on stderr but do not fail the process.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wikipath <start> <destination>",
		Short: "Find a chain of article links between two Wikipedia pages",
		Long: "Find a chain of article links leading from one Wikipedia article to another.\n" +
			"Titles may be given as plain titles or as article URLs.",
		Version:       versionString(),
		Args:          exactTitles,
		RunE:          runFind,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := rootCmd.Flags()
	f.StringVar(&flagStrategy, "strategy", "", "Traversal strategy: bfs|dfs (env: WIKIPATH_STRATEGY, default dfs)")
	f.IntVar(&flagDepth, "depth", 0, "Maximum number of hops (env: WIKIPATH_DEPTH, default 3)")
	f.StringVar(&flagFmt, "format", "text", "Output format: text|json|quiet")
	f.StringVar(&flagAPIURL, "api-url", "", "MediaWiki api.php URL (env: WIKIPATH_API_URL)")
	f.StringVar(&flagTimeout, "timeout", "", "Per-request upstream timeout, e.g. 30s (env: WIKIPATH_TIMEOUT)")
	f.IntVar(&flagConcurrency, "concurrency", 0, "Parallel neighbor resolutions (env: WIKIPATH_CONCURRENCY)")
	f.StringVar(&flagLogLevel, "log-level", "", "Log level: debug|info|warn|error (env: LOG_LEVEL)")
	f.StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file after the run")

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func exactTitles(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return newUsageError("expected <start> and <destination>, got %d argument(s)", len(args))
	}
	return nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var ue *usageError
	if err == nil || errors.As(err, &ue) {
		return 0
	}
	return 1
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
