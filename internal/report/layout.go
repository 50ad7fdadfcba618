package report

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

const (
	reportTitle   = "Meeting Notes Report"
	noSummary     = "No summary available."
	noActionItems = "No action items identified."
	notAvailable  = "N/A"
	dateLayout    = "2006-01-02 15:04"
	bodySize      = 12
	sectionSize   = 14
	titleSize     = 18
	bulletGlyph   = "• "
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

type run struct {
	text string
	bold bool
}

// paragraph is one line of the rendered document.
type paragraph struct {
	runs []run
	size uint64
}

func (p paragraph) String() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// layout builds the document body for record, independent of the writer.
func layout(record meeting.Record) []paragraph {
	filename := record.Filename
	if strings.TrimSpace(filename) == "" {
		filename = notAvailable
	}
	date := notAvailable
	if !record.CreatedAt.IsZero() {
		date = record.CreatedAt.Format(dateLayout)
	}

	out := []paragraph{
		heading(reportTitle, titleSize),
		heading("Meeting: "+filename, sectionSize),
		plain("Date: " + date),
		{},
		heading("Summary", sectionSize),
	}

	if strings.TrimSpace(record.Summary) == "" {
		out = append(out, plain(noSummary))
	} else {
		out = append(out, markdown(record.Summary)...)
	}

	out = append(out, paragraph{}, heading("Action Items", sectionSize))
	if len(record.ActionItems) == 0 {
		out = append(out, plain(noActionItems))
	}
	for _, item := range record.ActionItems {
		out = append(out, plain(bulletGlyph+item))
	}

	return out
}

// markdown renders the subset of markdown the model emits in summaries.
func markdown(text string) []paragraph {
	var out []paragraph
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			out = append(out, heading(m[2], headingSize(len(m[1]))))
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			out = append(out, rich(bulletGlyph+m[1]))
			continue
		}
		out = append(out, rich(trimmed))
	}
	return out
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return bodySize
	}
}

func heading(text string, size uint64) paragraph {
	return paragraph{runs: []run{{text: cleanInline(text), bold: true}}, size: size}
}

func plain(text string) paragraph {
	return paragraph{runs: []run{{text: text}}, size: bodySize}
}

// rich splits **bold** spans into separate runs.
func rich(text string) paragraph {
	p := paragraph{size: bodySize}
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.runs = append(p.runs, run{text: cleanInline(part)})
		}
		if i < len(matches) {
			p.runs = append(p.runs, run{text: cleanInline(matches[i][1]), bold: true})
		}
	}
	return p
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
