package transcriber

import "context"

// Provider turns an audio file into plain text. An empty language hint
// means the provider must detect the language itself.
type Provider interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

// Loader performs the expensive one-time initialization of a Provider.
type Loader func(ctx context.Context) (Provider, error)

// Stage is the transcription step of the meeting pipeline.
type Stage interface {
	Transcribe(ctx context.Context, artifactPath string) (string, error)
}
