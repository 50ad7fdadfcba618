package artifact

import (
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

type implStore struct {
	roots  map[Kind]string
	logger logger.Logger
}

// New creates a Store with one scratch root per kind.
// Roots are created lazily on the first Acquire.
func New(audioRoot, reportRoot string, log logger.Logger) Store {
	return &implStore{
		roots: map[Kind]string{
			KindAudioInput:   audioRoot,
			KindReportOutput: reportRoot,
		},
		logger: log,
	}
}
