package transcriber

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

// autoDetect is passed to the provider so mixed-language meetings are not
// forced through a single-language decoder.
const autoDetect = ""

// Transcribe checks the artifact and hands it to the provider. No retries.
func (s *implStage) Transcribe(ctx context.Context, artifactPath string) (string, error) {
	const op = "transcriber.Transcribe"

	info, err := os.Stat(artifactPath)
	if err != nil {
		return "", meeting.E(meeting.KindArtifactNotFound, op, fmt.Errorf("audio file not found: %w", err))
	}
	if info.IsDir() {
		return "", meeting.Ef(meeting.KindArtifactNotFound, op, "audio path %s is a directory", artifactPath)
	}
	if info.Size() == 0 {
		return "", meeting.Ef(meeting.KindArtifactNotFound, op, "audio file %s is empty", artifactPath)
	}

	provider, err := s.model.Get(ctx)
	if err != nil {
		return "", meeting.E(meeting.KindTranscriptionFailed, op, fmt.Errorf("load model: %w", err))
	}

	start := time.Now()
	s.logger.Info(ctx, "Transcribing %s (%d bytes)...", artifactPath, info.Size())

	text, err := provider.Transcribe(ctx, artifactPath, autoDetect)
	if err != nil {
		return "", meeting.E(meeting.KindTranscriptionFailed, op, err)
	}

	s.logger.Info(ctx, "Transcription complete: %d characters in %s", len([]rune(text)), time.Since(start).Round(time.Millisecond))
	return text, nil
}
