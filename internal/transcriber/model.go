package transcriber

import (
	"context"
	"sync"
)

// Model is the process-wide handle to the transcription provider.
// Construct it once at startup and share it; the provider is loaded on
// first use (or by Preload) and reused for the lifetime of the process.
type Model struct {
	mu       sync.Mutex
	load     Loader
	provider Provider
}

// NewModel wraps load without invoking it.
func NewModel(load Loader) *Model {
	return &Model{load: load}
}

// Get returns the loaded provider, loading it if needed. Concurrent first
// callers block until the single load completes. A failed load is not
// cached, so a later call may try again.
func (m *Model) Get(ctx context.Context) (Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.provider != nil {
		return m.provider, nil
	}

	p, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	m.provider = p
	return p, nil
}

// Preload loads the provider eagerly during startup.
func (m *Model) Preload(ctx context.Context) error {
	_, err := m.Get(ctx)
	return err
}
