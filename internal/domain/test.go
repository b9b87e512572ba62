package domain

import "time"

// TestEvent is delivered once for every finished test.
type TestEvent struct {
	// TitlePath is the title hierarchy, root first. Index 1 holds the
	// project (or package/suite) name.
	TitlePath []string
	// Title is the leaf title of the test.
	Title       string
	Status      RunnerStatus
	BrowserName string
	Duration    time.Duration
}

// Project returns the second title segment, or "" when absent.
func (e TestEvent) Project() string {
	if len(e.TitlePath) < 2 {
		return ""
	}
	return e.TitlePath[1]
}
