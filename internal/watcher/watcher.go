package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

var audioExtensions = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".webm", ".mp4", ".aac"}

// Start handles files already waiting in the inbox, then monitors it for new ones.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(audioExtensions, ", "))

	if err := w.drain(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name, w.settleDelay); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop waits for in-flight files and closes the file watcher.
func (w *implWatcher) Stop() error {
	w.wg.Wait()
	return w.watcher.Close()
}

func (w *implWatcher) drain(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isAudioFile(e.Name()) {
			continue
		}
		if err := w.dispatch(ctx, filepath.Join(w.inboxDir, e.Name()), 0); err != nil {
			return err
		}
	}
	return nil
}

// dispatch blocks for a free slot, then handles path in its own goroutine.
func (w *implWatcher) dispatch(ctx context.Context, path string, settle time.Duration) error {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.Release(1)

		// let the writer finish before reading the file
		if settle > 0 {
			select {
			case <-time.After(settle):
			case <-ctx.Done():
				return
			}
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
			return
		}
		if err := w.archive(path); err != nil {
			w.logger.Warn(ctx, "Failed to move %s to archive: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) archive(path string) error {
	if err := os.MkdirAll(w.archivedDir, 0755); err != nil {
		return err
	}
	dst := filepath.Join(w.archivedDir, filepath.Base(path))
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(dst)
		dst = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(dst, ext), time.Now().UnixNano(), ext)
	}
	return os.Rename(path, dst)
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range audioExtensions {
		if ext == format {
			return true
		}
	}
	return false
}
