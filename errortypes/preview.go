package errortypes

// previewLimit bounds how much offending input an error message may quote.
const previewLimit = 64

// Preview caps text for inclusion in an error, so that a pathological input
// line cannot balloon the message. Truncation is rune-aware and marked with
// an ellipsis.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
