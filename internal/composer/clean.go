package composer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var reCodeFence = regexp.MustCompile("```[a-zA-Z]*")

var answerFields = []string{"text", "message", "response"}

// CleanGeneratedText normalizes raw model output for display. It never fails and
// CleanGeneratedText(CleanGeneratedText(s)) == CleanGeneratedText(s).
func CleanGeneratedText(raw string) string {
	text := raw
	// every pass that changes the text shortens it, so this terminates
	for {
		next := cleanPass(text)
		if next == text {
			break
		}
		text = next
	}

	if utf8.RuneCountInString(text) < MinGeneratedLength {
		return ApologyText
	}
	return text
}

func cleanPass(text string) string {
	text = strings.TrimSpace(reCodeFence.ReplaceAllString(text, ""))

	if !gjson.Valid(text) {
		return text
	}
	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return text
	}
	for _, field := range answerFields {
		if v := parsed.Get(field); v.Type == gjson.String {
			return strings.TrimSpace(v.String())
		}
	}
	return text
}
