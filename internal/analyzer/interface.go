package analyzer

import "context"

// Provider is a text-in, text-out language model.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer derives a summary and action items from a transcript.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (summary string, actionItems []string, err error)
}
