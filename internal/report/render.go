package report

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

func (r *implRenderer) Render(ctx context.Context, record meeting.Record, format Format) (string, error) {
	const op = "report.Render"

	if format != FormatPDF && format != FormatDOCX {
		return "", meeting.Ef(meeting.KindInvalidRequest, op, "unsupported report format %q", format)
	}

	art, err := r.store.Acquire(artifact.KindReportOutput, Filename(record.ID, format))
	if err != nil {
		return "", meeting.E(meeting.KindRender, op, err)
	}

	paragraphs := layout(record)
	if format == FormatDOCX {
		err = writeDOCX(paragraphs, r.fontFamily(ctx), art.Path)
	} else {
		err = r.writePDF(ctx, paragraphs, art.Path)
	}
	if err != nil {
		if relErr := r.store.Release(art.Path); relErr != nil {
			r.logger.Warn(ctx, "Failed to release report %s: %v", art.Path, relErr)
		}
		return "", meeting.E(meeting.KindRender, op, err)
	}

	r.logger.Info(ctx, "Rendered %s report for meeting %s: %s", format, record.ID, art.Path)
	return art.Path, nil
}

// Filename is the download name of the report for meeting id.
func Filename(id string, format Format) string {
	return fmt.Sprintf("meeting_report_%s.%s", id, format)
}

// installedFont returns the configured font file when it exists.
func (r *implRenderer) installedFont() (string, bool) {
	if r.cfg.FontPath == "" {
		return "", false
	}
	info, err := os.Stat(r.cfg.FontPath)
	if err != nil || info.IsDir() {
		return "", false
	}
	return r.cfg.FontPath, true
}

// fontFamily picks the CJK-capable family when its font file is installed.
func (r *implRenderer) fontFamily(ctx context.Context) string {
	if _, ok := r.installedFont(); ok {
		return r.cfg.FontFamily
	}
	r.logger.Debug(ctx, "Font %q not found, using %s", r.cfg.FontPath, r.cfg.FallbackFamily)
	return r.cfg.FallbackFamily
}
