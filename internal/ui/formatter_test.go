package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrep/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestFormatter_PrintBatch(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatterTo(&buf)

	f.PrintBatch(domain.Batch{
		{TestCaseKey: "QA-11", Status: domain.StatusFail, Environment: "firefox", ExecutionDate: "2026-10-19T08:00:01.000Z"},
		{TestCaseKey: "QA-10", Status: domain.StatusPass, Environment: "chromium", ExecutionDate: "2026-10-19T08:00:00.000Z"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Test Case"))
	assert.True(t, strings.HasPrefix(lines[1], "QA-10"), "rows are sorted by key")
	assert.Contains(t, lines[1], "Pass")
	assert.Contains(t, lines[1], "chromium")
	assert.True(t, strings.HasPrefix(lines[2], "QA-11"))
	assert.Contains(t, lines[2], "Fail")
}

func TestFormatter_PrintBatchEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewFormatterTo(&buf).PrintBatch(nil)
	assert.Equal(t, "No tagged tests found\n", buf.String())
}

func TestFormatter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewFormatterTo(&buf).PrintSummary(domain.Batch{
		{TestCaseKey: "QA-1", Status: domain.StatusPass},
		{TestCaseKey: "QA-2", Status: domain.StatusBlocked},
	}, 5)

	assert.Contains(t, buf.String(), "2 of 5 finished test(s) tagged")
	assert.Contains(t, buf.String(), "1 pass, 0 fail, 1 blocked, 0 not executed")
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(3, &buf)
	bar.Update(1, 1, 1)
	bar.Finish()

	assert.Contains(t, buf.String(), "skipped: 1")
}
