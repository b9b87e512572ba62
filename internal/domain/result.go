package domain

import "time"

// ExecutionDateLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const ExecutionDateLayout = "2006-01-02T15:04:05.000Z"

// TestResult is one normalized record of a Zephyr test run.
type TestResult struct {
	TestCaseKey   string `json:"testCaseKey"`
	Status        Status `json:"status"`
	Environment   string `json:"environment"`
	ExecutionDate string `json:"executionDate"`
}

// FormatExecutionDate formats t for the executionDate field.
func FormatExecutionDate(t time.Time) string {
	return t.UTC().Format(ExecutionDateLayout)
}

// Batch is the ordered set of results submitted at the end of a run.
type Batch []TestResult

// Count returns the number of records per status.
func (b Batch) Count() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, r := range b {
		counts[r.Status]++
	}
	return counts
}
