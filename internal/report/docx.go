package report

import (
	"fmt"

	"github.com/gomutex/godocx"
)

// writeDOCX names font on every run; the viewer supplies the glyphs.
func writeDOCX(paragraphs []paragraph, font, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	for _, para := range paragraphs {
		p := doc.AddParagraph("")
		for _, rn := range para.runs {
			text := p.AddText(rn.text).Font(font).Size(para.size).Color("000000")
			if rn.bold {
				text.Bold(true)
			}
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
