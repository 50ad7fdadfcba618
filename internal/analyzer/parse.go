package analyzer

import "strings"

const (
	actionMarker    = "ACTION:"
	noActionsPhrase = "no action items"
)

// ParseActionItems keeps, in order, every trimmed line whose upper-cased
// form starts with "ACTION:". Everything else is dropped.
//
// mismatch is true when nothing qualified, the output is not blank, and it
// does not say "no action items": the model likely ignored the format.
func ParseActionItems(raw string) (items []string, mismatch bool) {
	items = []string{}
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToUpper(trimmed), actionMarker) {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 &&
		strings.TrimSpace(raw) != "" &&
		!strings.Contains(strings.ToLower(raw), noActionsPhrase) {
		mismatch = true
	}
	return items, mismatch
}
