package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-agent/internal/analyzer"
	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-agent/internal/report"
	"github.com/nguyentantai21042004/meeting-agent/internal/repository"
	"github.com/nguyentantai21042004/meeting-agent/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-agent/pkg/executor"
)

// App holds the long-lived services shared by every entry point.
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Store    artifact.Store
	Repo     repository.Repository
	Model    *transcriber.Model
	Pipeline pipeline.Pipeline
	Renderer report.Renderer
}

// New wires the services described by cfg. The transcription model is not
// loaded until first use or an explicit Preload.
func New(cfg *config.Config, log logger.Logger) (*App, error) {
	repo, err := repository.Open(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}

	loader, err := transcriber.NewLoader(cfg, executor.New(), log)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("transcriber: %w", err)
	}
	model := transcriber.NewModel(loader)

	provider, err := analyzer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	store := artifact.New(cfg.Paths.AudioScratch, cfg.Paths.ReportScratch, log)
	pipe := pipeline.New(
		store,
		transcriber.New(model, log),
		analyzer.New(provider, log),
		repo,
		cfg.Performance.MaxConcurrent,
		log,
	)

	return &App{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		Repo:     repo,
		Model:    model,
		Pipeline: pipe,
		Renderer: report.New(store, cfg.Report, log),
	}, nil
}

// ProcessFile runs a local audio file through the pipeline under its base name.
func (a *App) ProcessFile(ctx context.Context, path string) (pipeline.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return a.Pipeline.Process(ctx, pipeline.Upload{Filename: filepath.Base(path), Body: f})
}

// PurgeScratch empties both scratch areas.
func (a *App) PurgeScratch(ctx context.Context) error {
	for _, kind := range []artifact.Kind{artifact.KindAudioInput, artifact.KindReportOutput} {
		if err := a.Store.PurgeAll(kind); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Close() error {
	return a.Repo.Close()
}
