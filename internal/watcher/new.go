package watcher

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

type implWatcher struct {
	inboxDir      string
	archivedDir   string
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore.Weighted
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// New creates a Watcher on inboxDir. At most maxConcurrent files are handled
// at once; successfully handled files are moved into archivedDir.
func New(inboxDir, archivedDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	if err := os.MkdirAll(inboxDir, 0755); err != nil {
		return nil, fmt.Errorf("create inbox: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir:      inboxDir,
		archivedDir:   archivedDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		sem:           semaphore.NewWeighted(int64(maxConcurrent)),
		settleDelay:   defaultSettleDelay,
	}, nil
}
