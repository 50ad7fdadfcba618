package executor

import "context"

// Executor runs external binaries such as whisper.cpp and ffmpeg.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
