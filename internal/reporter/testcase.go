package reporter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"zrep/internal/domain"
)

// TestCaseKeyPattern captures the test case id from a title such as "[123] login works".
var TestCaseKeyPattern = regexp.MustCompile(`\[(.*?)\]`)

// extractTestCaseID returns the first bracketed token of title.
func extractTestCaseID(title string) (string, bool) {
	match := TestCaseKeyPattern.FindStringSubmatch(title)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

// environmentOf prefers the project segment of the title path and falls
// back to the capitalized browser name.
func environmentOf(event domain.TestEvent) string {
	if project := event.Project(); project != "" {
		return project
	}
	return capitalize(event.BrowserName)
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	var b strings.Builder
	b.Grow(len(word))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(word[size:])
	return b.String()
}
