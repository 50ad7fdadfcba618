package artifact

// Kind identifies which scratch area an artifact lives in.
type Kind string

const (
	KindAudioInput   Kind = "audio-input"
	KindReportOutput Kind = "report-output"
)

// Artifact is a transient file owned by the operation that acquired it.
type Artifact struct {
	Path string
	Kind Kind
}

// Store manages transient files under per-kind scratch roots.
// Every Acquire must be paired with a Release on all exit paths of the caller.
type Store interface {
	Acquire(kind Kind, suggestedName string) (Artifact, error)
	Release(path string) error
	PurgeAll(kind Kind) error
	Root(kind Kind) (string, error)
}
