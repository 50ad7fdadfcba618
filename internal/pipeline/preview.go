package pipeline

const previewLength = 200

// Preview returns the first 200 characters of text followed by "..." when
// text is longer, otherwise text unchanged.
func Preview(text string) string {
	count := 0
	for i := range text {
		if count == previewLength {
			return text[:i] + "..."
		}
		count++
	}
	return text
}
