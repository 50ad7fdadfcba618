package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.wav", true},
		{"MEETING.MP3", true},
		{"/inbox/call.m4a", true},
		{"voice.ogg", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := isAudioFile(tt.path); got != tt.want {
			t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

type recorder struct {
	mu    sync.Mutex
	paths []string
	fail  bool
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, filepath.Base(path))
	if r.fail {
		return errors.New("pipeline failed")
	}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

func runWatcher(t *testing.T, inbox, archived string, rec *recorder, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(inbox, f), []byte("audio"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := New(inbox, archived, rec.handle, logger.Discard(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for rec.count() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}

func TestStartArchivesHandledFiles(t *testing.T) {
	dir := t.TempDir()
	inbox, archived := filepath.Join(dir, "inbox"), filepath.Join(dir, "archived")
	if err := os.MkdirAll(inbox, 0755); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	runWatcher(t, inbox, archived, rec, "standup.wav", "readme.txt")

	if len(rec.paths) != 1 || rec.paths[0] != "standup.wav" {
		t.Fatalf("handled = %v, want [standup.wav]", rec.paths)
	}
	if _, err := os.Stat(filepath.Join(archived, "standup.wav")); err != nil {
		t.Errorf("file was not archived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(inbox, "readme.txt")); err != nil {
		t.Errorf("non-audio file should stay in the inbox: %v", err)
	}
}

func TestStartLeavesFailedFiles(t *testing.T) {
	dir := t.TempDir()
	inbox, archived := filepath.Join(dir, "inbox"), filepath.Join(dir, "archived")
	if err := os.MkdirAll(inbox, 0755); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{fail: true}
	runWatcher(t, inbox, archived, rec, "broken.mp3")

	if _, err := os.Stat(filepath.Join(inbox, "broken.mp3")); err != nil {
		t.Errorf("failed file should stay in the inbox: %v", err)
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		files int
	}{
		{"serial", 1, 4},
		{"two slots", 2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				mu       sync.Mutex
				inFlight int
				peak     int
				handled  int
			)
			handler := func(ctx context.Context, path string) error {
				mu.Lock()
				inFlight++
				if inFlight > peak {
					peak = inFlight
				}
				mu.Unlock()

				time.Sleep(20 * time.Millisecond)

				mu.Lock()
				inFlight--
				handled++
				mu.Unlock()
				return errors.New("keep in inbox")
			}

			w := &implWatcher{
				handler: handler,
				logger:  logger.Discard(),
				sem:     semaphore.NewWeighted(int64(tt.limit)),
			}
			for i := 0; i < tt.files; i++ {
				if err := w.dispatch(context.Background(), filepath.Join(t.TempDir(), "a.wav"), 0); err != nil {
					t.Fatalf("dispatch() error = %v", err)
				}
			}
			w.wg.Wait()

			if handled != tt.files {
				t.Errorf("handled = %d, want %d", handled, tt.files)
			}
			if peak > tt.limit {
				t.Errorf("peak concurrency = %d, want at most %d", peak, tt.limit)
			}
		})
	}
}

func TestDispatchCancelledWhileFull(t *testing.T) {
	release := make(chan struct{})
	w := &implWatcher{
		handler: func(ctx context.Context, path string) error {
			<-release
			return errors.New("keep in inbox")
		},
		logger: logger.Discard(),
		sem:    semaphore.NewWeighted(1),
	}

	if err := w.dispatch(context.Background(), "first.wav", 0); err != nil {
		t.Fatalf("dispatch() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.dispatch(ctx, "second.wav", 0); !errors.Is(err, context.Canceled) {
		t.Errorf("dispatch() error = %v, want context.Canceled", err)
	}

	close(release)
	w.wg.Wait()
}

func TestArchiveAvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := &implWatcher{archivedDir: filepath.Join(dir, "archived")}

	for i := 0; i < 2; i++ {
		src := filepath.Join(dir, "call.wav")
		if err := os.WriteFile(src, []byte{byte(i)}, 0644); err != nil {
			t.Fatal(err)
		}
		if err := w.archive(src); err != nil {
			t.Fatalf("archive() error = %v", err)
		}
	}

	entries, err := os.ReadDir(w.archivedDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("archived %d files, want 2", len(entries))
	}
}
