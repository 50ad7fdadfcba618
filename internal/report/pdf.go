package report

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	// coreFont is built into every PDF reader and covers cp1252 only.
	coreFont    = "Times"
	footerSize  = 8
	lineSpacing = 0.42 // mm of line height per point of font size
)

// pdfFont is the family used for the whole document. file is empty for the
// core font.
type pdfFont struct {
	family string
	file   string
}

// writePDF embeds the configured font when it is installed and loads, and
// otherwise falls back to the core font.
func (r *implRenderer) writePDF(ctx context.Context, paragraphs []paragraph, outputPath string) error {
	if file, ok := r.installedFont(); ok {
		pdf, err := buildEmbedded(paragraphs, pdfFont{family: r.cfg.FontFamily, file: file})
		if err == nil {
			return pdf.OutputFileAndClose(outputPath)
		}
		r.logger.Warn(ctx, "Font %s could not be embedded, using %s: %v", file, coreFont, err)
	} else {
		r.logger.Debug(ctx, "Font %q not found, using %s", r.cfg.FontPath, coreFont)
	}

	return buildPDF(paragraphs, pdfFont{family: coreFont}).OutputFileAndClose(outputPath)
}

// buildEmbedded reports a font file the parser rejects, or chokes on, as an
// error.
func buildEmbedded(paragraphs []paragraph, font pdfFont) (pdf *fpdf.Fpdf, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pdf, err = nil, fmt.Errorf("parse font: %v", rec)
		}
	}()

	pdf = buildPDF(paragraphs, font)
	if !pdf.Ok() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

func buildPDF(paragraphs []paragraph, font pdfFont) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(reportTitle, true)
	pdf.SetCreator("meetingagent", true)

	encode := func(s string) string { return s }
	if font.file != "" {
		pdf.AddUTF8Font(font.family, "", font.file)
		pdf.AddUTF8Font(font.family, "B", font.file)
	} else {
		encode = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(font.family, "", footerSize)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, para := range paragraphs {
		size := float64(para.size)
		if size == 0 {
			size = bodySize
		}
		lineHeight := size * lineSpacing

		if len(para.runs) == 0 {
			pdf.Ln(lineHeight / 2)
			continue
		}
		for _, rn := range para.runs {
			style := ""
			if rn.bold {
				style = "B"
			}
			pdf.SetFont(font.family, style, size)
			pdf.Write(lineHeight, encode(rn.text))
		}
		pdf.Ln(lineHeight)
	}

	return pdf
}
