package pipeline

import (
	"context"
	"io"
)

// Upload is one audio file handed to the pipeline. Filename is the client's
// name and is stored verbatim; it may be blank.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Result is what a successful run reports back to the caller.
type Result struct {
	MeetingID         string   `json:"meeting_id"`
	Filename          string   `json:"filename"`
	TranscriptPreview string   `json:"transcript_preview"`
	Summary           string   `json:"summary"`
	ActionItems       []string `json:"action_items"`
}

// Pipeline turns uploaded audio into a stored meeting record.
type Pipeline interface {
	Process(ctx context.Context, upload Upload) (Result, error)
}
