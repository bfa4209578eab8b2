package models

import "fmt"

// Strategy selects the traversal policy.
type Strategy string

// Supported traversal strategies.
const (
	StrategyBFS Strategy = "bfs"
	StrategyDFS Strategy = "dfs"
)

// Request defaults and limits.
const (
	DefaultStrategy = StrategyDFS
	DefaultDepth    = 3
	MaxDepth        = 10
)

// ParseStrategy converts user input into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBFS, StrategyDFS:
		return Strategy(s), nil
	case "":
		return DefaultStrategy, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidStrategy, s)
	}
}

// Reasons reported on a not-found PathResult.
const (
	ReasonExhausted      = "exhausted"
	ReasonDepthExhausted = "depth_exhausted"
	ReasonBudgetExceeded = "budget_exceeded"
)

// PathRequest asks for a path between two article titles.
type PathRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Strategy Strategy `json:"strategy"`
	Depth    int      `json:"depth"`
}

// Validate checks the request fields.
func (r *PathRequest) Validate() error {
	if r.From == "" || r.To == "" {
		return ErrMissingTitle
	}

	if _, err := ParseStrategy(string(r.Strategy)); err != nil {
		return err
	}

	if r.Depth < 0 {
		return ErrNegativeDepth
	}

	if r.Depth > MaxDepth {
		return fmt.Errorf("%w of %d", ErrDepthTooLarge, MaxDepth)
	}

	return nil
}

// PathResult is the outcome of one traversal run. Found=false is a valid
// negative result, not an error.
type PathResult struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Found    bool     `json:"found"`
	Titles   []string `json:"titles,omitempty"`
	Hops     int      `json:"hops"`
	Strategy Strategy `json:"strategy"`
	MaxDepth int      `json:"max_depth,omitempty"`
	Expanded int      `json:"expanded"`
	Reason   string   `json:"reason,omitempty"`
	RunID    string   `json:"run_id,omitempty"`
}
