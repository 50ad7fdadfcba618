package analyzer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

// Analyze runs the summary and action-item prompts concurrently. Each
// goroutine writes only its own result; either failure fails the stage.
func (a *implAnalyzer) Analyze(ctx context.Context, transcript string) (string, []string, error) {
	const op = "analyzer.Analyze"

	var summaryText, actionText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info(gctx, "Generating summary...")
		out, err := a.provider.Generate(gctx, fmt.Sprintf(summaryPrompt, transcript))
		if err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
		summaryText = strings.TrimSpace(out)
		return nil
	})
	g.Go(func() error {
		a.logger.Info(gctx, "Generating action items...")
		out, err := a.provider.Generate(gctx, fmt.Sprintf(actionPrompt, transcript))
		if err != nil {
			return fmt.Errorf("extract action items: %w", err)
		}
		actionText = strings.TrimSpace(out)
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", nil, meeting.E(meeting.KindAnalysisFailed, op, err)
	}

	items, mismatch := ParseActionItems(actionText)
	if mismatch {
		a.logger.Warn(ctx, "Action item output did not follow the ACTION: format; keeping no items. Raw output: %q", truncate(actionText, 200))
	}

	a.logger.Info(ctx, "Analysis complete: summary %d chars, %d action items", len([]rune(summaryText)), len(items))
	return summaryText, items, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
