package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

type fakeProvider struct {
	text     string
	err      error
	calls    int32
	language string
}

func (f *fakeProvider) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.language = language
	return f.text, f.err
}

func staticModel(p Provider) *Model {
	return NewModel(func(ctx context.Context) (Provider, error) { return p, nil })
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribePreconditions(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{text: "hello"}
	stage := New(staticModel(provider), logger.Discard())

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.wav")},
		{"empty file", writeFile(t, "empty.wav", nil)},
		{"directory", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stage.Transcribe(ctx, tt.path)
			if !meeting.IsKind(err, meeting.KindArtifactNotFound) {
				t.Errorf("Transcribe() error = %v, want artifact not found", err)
			}
		})
	}

	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0 before preconditions pass", provider.calls)
	}
}

func TestTranscribeSuccess(t *testing.T) {
	provider := &fakeProvider{text: "please send the report by Friday", language: "unset"}
	stage := New(staticModel(provider), logger.Discard())

	text, err := stage.Transcribe(context.Background(), writeFile(t, "clip.wav", []byte("RIFF")))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "please send the report by Friday" {
		t.Errorf("Transcribe() = %q", text)
	}
	if provider.language != "" {
		t.Errorf("language hint = %q, want empty for auto-detect", provider.language)
	}
}

func TestTranscribeEmptyTextIsSuccess(t *testing.T) {
	stage := New(staticModel(&fakeProvider{text: ""}), logger.Discard())

	text, err := stage.Transcribe(context.Background(), writeFile(t, "silence.wav", []byte("RIFF")))
	if err != nil {
		t.Fatalf("Transcribe() error = %v, empty text is not an error", err)
	}
	if text != "" {
		t.Errorf("Transcribe() = %q, want empty", text)
	}
}

func TestTranscribeProviderFailure(t *testing.T) {
	cause := errors.New("decode error")
	provider := &fakeProvider{err: cause}
	stage := New(staticModel(provider), logger.Discard())

	_, err := stage.Transcribe(context.Background(), writeFile(t, "clip.wav", []byte("RIFF")))
	if !meeting.IsKind(err, meeting.KindTranscriptionFailed) {
		t.Fatalf("Transcribe() error = %v, want transcription failed", err)
	}
	if !errors.Is(err, cause) {
		t.Error("provider error should be wrapped")
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want exactly 1 (no retry)", provider.calls)
	}
}

func TestTranscribeLoadFailure(t *testing.T) {
	model := NewModel(func(ctx context.Context) (Provider, error) {
		return nil, errors.New("model file missing")
	})
	stage := New(model, logger.Discard())

	_, err := stage.Transcribe(context.Background(), writeFile(t, "clip.wav", []byte("RIFF")))
	if !meeting.IsKind(err, meeting.KindTranscriptionFailed) {
		t.Errorf("Transcribe() error = %v, want transcription failed", err)
	}
}

func TestModelLoadsOnce(t *testing.T) {
	var loads int32
	provider := &fakeProvider{}
	model := NewModel(func(ctx context.Context) (Provider, error) {
		atomic.AddInt32(&loads, 1)
		return provider, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := model.Get(context.Background())
			if err != nil {
				t.Errorf("Get() error = %v", err)
				return
			}
			if p != provider {
				t.Error("Get() returned a different provider instance")
			}
		}()
	}
	wg.Wait()

	if loads != 1 {
		t.Errorf("loader called %d times, want 1", loads)
	}
}

func TestModelRetriesFailedLoad(t *testing.T) {
	attempts := 0
	model := NewModel(func(ctx context.Context) (Provider, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("transient")
		}
		return &fakeProvider{}, nil
	})

	if err := model.Preload(context.Background()); err == nil {
		t.Fatal("Preload() should surface the first load error")
	}
	if _, err := model.Get(context.Background()); err != nil {
		t.Fatalf("Get() error = %v, second load should succeed", err)
	}
	if _, err := model.Get(context.Background()); err != nil {
		t.Fatal(err)
	}
	if attempts != 2 {
		t.Errorf("loader called %d times, want 2", attempts)
	}
}
