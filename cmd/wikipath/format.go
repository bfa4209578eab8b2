package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/persistorai/wikipath/internal/models"
)

func formatJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// formatText renders a path as "A -> B -> C", or explains why none was found.
func formatText(r *models.PathResult) string {
	if r.Found {
		return strings.Join(r.Titles, " -> ")
	}
	return fmt.Sprintf("no path found from %s to %s (%s, %s, max depth %d)", r.From, r.To, r.Reason, r.Strategy, r.MaxDepth)
}

// formatQuiet prints the hop count, or -1 when no path exists.
func formatQuiet(r *models.PathResult) string {
	if !r.Found {
		return "-1"
	}
	return fmt.Sprint(r.Hops)
}

func printResult(format string, r *models.PathResult) error {
	switch format {
	case "json":
		return formatJSON(r)
	case "quiet":
		fmt.Println(formatQuiet(r))
	default:
		fmt.Println(formatText(r))
	}
	return nil
}
