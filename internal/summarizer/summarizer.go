package summarizer

import (
	"context"
)

// Result carries the generated answer and the monetary cost of the
// model invocation, computed from token usage.
type Result struct {
	Answer string
	Cost   float64
}

// Summarizer turns a prompt into a generated summary. Failures are
// surfaced to the caller; retry policy, if any, belongs there.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (*Result, error)
}
