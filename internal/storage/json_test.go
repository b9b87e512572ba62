package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrep/internal/config"
	"zrep/internal/domain"
)

func TestJSONStorage_CreateRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "run.json")
	s := NewJSONStorage(path)
	assert.Equal(t, path, s.Path())

	rc := config.RunConfig{
		Host:               "https://jira.example.com",
		ProjectKey:         "QA",
		AuthorizationToken: "secret-token",
		Options:            map[string]any{"testPlanKey": "QA-P1"},
	}
	batch := domain.Batch{
		{TestCaseKey: "QA-10", Status: domain.StatusPass, Environment: "chromium", ExecutionDate: "2026-10-19T08:00:00.000Z"},
		{TestCaseKey: "QA-11", Status: domain.StatusFail, Environment: "firefox", ExecutionDate: "2026-10-19T08:00:01.000Z"},
	}

	require.NoError(t, s.CreateRun(context.Background(), rc, batch))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-token")

	var export domain.RunExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "QA", export.Meta.ProjectKey)
	assert.Equal(t, 2, export.Meta.Total)
	assert.Equal(t, 1, export.Meta.Statuses[domain.StatusFail])
	assert.Equal(t, "QA-P1", export.Options["testPlanKey"])
	assert.Equal(t, batch, export.Items)
}

func TestJSONStorage_CreateRunUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s := NewJSONStorage(filepath.Join(blocker, "run.json"))
	err := s.CreateRun(context.Background(), config.RunConfig{ProjectKey: "QA"}, domain.Batch{{TestCaseKey: "QA-1"}})
	require.Error(t, err)
}
