package provider

import "strings"

// ExtractDialogue returns only the quoted dialogue spans of text, joined by
// spaces. Text outside matching double quotes is narration and is discarded.
// An empty result means there was nothing speakable.
func ExtractDialogue(text string) string {
	var spans []string
	var current strings.Builder
	inQuote := false

	for _, r := range text {
		switch r {
		case '"', '“', '”': // 直引号和弯引号都算
			if inQuote {
				if s := strings.TrimSpace(current.String()); s != "" {
					spans = append(spans, s)
				}
				current.Reset()
				inQuote = false
			} else {
				inQuote = true
			}
		default:
			if inQuote {
				current.WriteRune(r)
			}
		}
	}
	// 未闭合的引号，残留内容按旁白丢弃

	return strings.Join(spans, " ")
}
