package watcher

import "context"

// Watcher ingests audio files dropped into an inbox directory.
type Watcher interface {
	// Start blocks until ctx is done, handing every audio file that appears
	// in the inbox to the handler.
	Start(ctx context.Context) error
	// Stop waits for in-flight files and releases the underlying watch.
	Stop() error
}

// Handler processes one inbox file. A nil error archives the file.
type Handler func(ctx context.Context, filePath string) error
