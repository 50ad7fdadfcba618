package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

const fallbackName = "upload"

// Process runs one upload through transcription, analysis and persistence.
// The audio artifact is released on every exit path and nothing is stored
// unless every stage succeeds.
func (p *implPipeline) Process(ctx context.Context, upload Upload) (Result, error) {
	const op = "pipeline.Process"

	startTime := time.Now()
	run := uuid.NewString()[:8]

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return Result{}, meeting.E(meeting.KindUnknown, op, err)
	}
	defer p.sem.Release(1)

	p.transition(ctx, run, StateReceived, "file=%q", upload.Filename)

	name := upload.Filename
	if strings.TrimSpace(name) == "" {
		name = fallbackName
	}

	art, err := p.store.Acquire(artifact.KindAudioInput, name)
	if err != nil {
		return Result{}, p.fail(ctx, run, meeting.E(meeting.KindArtifactNotFound, op, err))
	}
	defer func() {
		if err := p.store.Release(art.Path); err != nil {
			p.logger.Warn(ctx, "[%s] Failed to release audio artifact: %v", run, err)
		}
	}()

	if err := writeBody(art.Path, upload.Body); err != nil {
		return Result{}, p.fail(ctx, run, meeting.E(meeting.KindArtifactNotFound, op, err))
	}

	p.transition(ctx, run, StateTranscribing, "")
	transcript, err := p.transcriber.Transcribe(ctx, art.Path)
	if err != nil {
		return Result{}, p.fail(ctx, run, err)
	}

	p.transition(ctx, run, StateAnalyzing, "transcript %d chars", len([]rune(transcript)))
	summary, items, err := p.analyzer.Analyze(ctx, transcript)
	if err != nil {
		return Result{}, p.fail(ctx, run, err)
	}

	p.transition(ctx, run, StatePersisting, "")
	id, err := p.repo.Create(ctx, upload.Filename, transcript, summary, items)
	if err != nil {
		return Result{}, p.fail(ctx, run, err)
	}

	p.transition(ctx, run, StateDone, "meeting_id=%s in %s", id, time.Since(startTime).Round(time.Millisecond))

	return Result{
		MeetingID:         id,
		Filename:          upload.Filename,
		TranscriptPreview: Preview(transcript),
		Summary:           summary,
		ActionItems:       items,
	}, nil
}

func writeBody(path string, body io.Reader) error {
	if body == nil {
		return fmt.Errorf("upload has no body")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	return f.Close()
}

func (p *implPipeline) transition(ctx context.Context, run string, state State, format string, args ...interface{}) {
	if format == "" {
		p.logger.Info(ctx, "[%s] %s", run, state)
		return
	}
	p.logger.Info(ctx, "[%s] %s: %s", run, state, fmt.Sprintf(format, args...))
}

// fail logs the terminal failed state and makes sure the caller receives a
// classified error.
func (p *implPipeline) fail(ctx context.Context, run string, err error) error {
	p.logger.Error(ctx, "[%s] %s: %s: %v", run, StateFailed, meeting.KindOf(err), err)
	if meeting.KindOf(err) == meeting.KindUnknown {
		return meeting.E(meeting.KindUnknown, "pipeline.Process", err)
	}
	return err
}
