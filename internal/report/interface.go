package report

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

// Format selects the document type a report is rendered as.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat maps a requested format name to a Format. An empty name
// selects PDF.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", meeting.Ef(meeting.KindInvalidRequest, "report.ParseFormat", "unsupported report format %q", name)
	}
}

// ContentType is the media type of a report rendered as f.
func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// Renderer turns a stored meeting into a downloadable document.
type Renderer interface {
	// Render writes the report into a report-output artifact and returns its
	// path. The caller releases the artifact once it has been served.
	Render(ctx context.Context, record meeting.Record, format Format) (string, error)
}
