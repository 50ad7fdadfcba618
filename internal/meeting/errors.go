package meeting

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can dispatch on it without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindArtifactNotFound
	KindTranscriptionFailed
	KindAnalysisFailed
	KindPersistence
	KindNotFound
	KindRender
	KindInvalidRequest
)

func (k Kind) String() string {
	switch k {
	case KindArtifactNotFound:
		return "artifact not found"
	case KindTranscriptionFailed:
		return "transcription failed"
	case KindAnalysisFailed:
		return "analysis failed"
	case KindPersistence:
		return "persistence error"
	case KindNotFound:
		return "not found"
	case KindRender:
		return "render error"
	case KindInvalidRequest:
		return "invalid request"
	default:
		return "unknown error"
	}
}

// Error is a classified error raised by a pipeline stage or the repository.
// Op names the operation that failed, Err carries the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds a classified error.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Ef builds a classified error from a format string.
func Ef(kind Kind, op string, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the outermost classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
