package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/pkg/executor"
)

type implStage struct {
	model  *Model
	logger logger.Logger
}

// New creates the transcription Stage backed by the shared model handle.
func New(model *Model, log logger.Logger) Stage {
	return &implStage{
		model:  model,
		logger: log,
	}
}

// NewLoader selects the Loader for the configured transcription backend.
func NewLoader(cfg *config.Config, exec executor.Executor, log logger.Logger) (Loader, error) {
	switch cfg.Transcription.Backend {
	case config.BackendWhisper:
		return NewWhisperLoader(cfg.Whisper, cfg.FFmpeg, exec, log), nil
	case config.BackendOpenAI:
		return NewOpenAILoader(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unsupported transcription backend %q", cfg.Transcription.Backend)
	}
}
