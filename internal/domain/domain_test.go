package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZephyrStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   RunnerStatus
		expected Status
	}{
		{name: "passed", status: RunnerPassed, expected: StatusPass},
		{name: "failed", status: RunnerFailed, expected: StatusFail},
		{name: "skipped", status: RunnerSkipped, expected: StatusNotExecuted},
		{name: "timed out", status: RunnerTimedOut, expected: StatusBlocked},
		{name: "interrupted", status: RunnerInterrupted, expected: StatusNotExecuted},
		{name: "unknown", status: "flaky", expected: StatusNotExecuted},
		{name: "empty", status: "", expected: StatusNotExecuted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ZephyrStatus(tt.status))
		})
	}
}

func TestTestEvent_Project(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chromium", TestEvent{TitlePath: []string{"", "chromium", "a.spec.ts"}}.Project())
	assert.Empty(t, TestEvent{TitlePath: []string{"suite"}}.Project())
	assert.Empty(t, TestEvent{}.Project())
}

func TestFormatExecutionDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2026, 10, 19, 12, 30, 5, 123456789, loc)
	assert.Equal(t, "2026-10-19T10:30:05.123Z", FormatExecutionDate(ts))
}

func TestBatch_Count(t *testing.T) {
	t.Parallel()

	b := Batch{
		{TestCaseKey: "QA-1", Status: StatusPass},
		{TestCaseKey: "QA-2", Status: StatusFail},
		{TestCaseKey: "QA-3", Status: StatusPass},
	}
	counts := b.Count()
	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusFail])
	assert.Zero(t, counts[StatusBlocked])
}
