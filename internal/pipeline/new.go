package pipeline

import (
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/meeting-agent/internal/analyzer"
	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/internal/repository"
	"github.com/nguyentantai21042004/meeting-agent/internal/transcriber"
)

type implPipeline struct {
	store       artifact.Store
	transcriber transcriber.Stage
	analyzer    analyzer.Analyzer
	repo        repository.Repository
	sem         *semaphore.Weighted
	logger      logger.Logger
}

// New creates a Pipeline that runs at most maxConcurrent uploads at once.
func New(
	store artifact.Store,
	stage transcriber.Stage,
	an analyzer.Analyzer,
	repo repository.Repository,
	maxConcurrent int,
	log logger.Logger,
) Pipeline {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &implPipeline{
		store:       store,
		transcriber: stage,
		analyzer:    an,
		repo:        repo,
		sem:         semaphore.NewWeighted(int64(maxConcurrent)),
		logger:      log,
	}
}
