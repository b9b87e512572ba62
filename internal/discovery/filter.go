package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters report files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the files whose base name matches pattern. Patterns
// with wildcards use filepath.Match ("junit-*.xml"), others match as a
// substring ("chromium").
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	wildcard := strings.ContainsAny(pattern, "*?[")
	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)
		if wildcard {
			if matched, err := filepath.Match(pattern, name); err == nil && matched {
				filtered = append(filtered, file)
			}
			continue
		}
		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}
