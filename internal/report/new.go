package report

import (
	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

type implRenderer struct {
	store  artifact.Store
	cfg    config.ReportConfig
	logger logger.Logger
}

// New creates a Renderer that writes PDF or DOCX reports into store.
func New(store artifact.Store, cfg config.ReportConfig, log logger.Logger) Renderer {
	return &implRenderer{
		store:  store,
		cfg:    cfg,
		logger: log,
	}
}
