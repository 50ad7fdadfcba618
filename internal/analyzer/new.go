package analyzer

import (
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

type implAnalyzer struct {
	provider Provider
	logger   logger.Logger
}

// New creates an Analyzer that issues its summary and action prompts to provider.
func New(provider Provider, log logger.Logger) Analyzer {
	return &implAnalyzer{
		provider: provider,
		logger:   log,
	}
}
