package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zrep/internal/config"
	"zrep/internal/domain"
)

// CreateRun writes the batch with its run metadata. Credentials are not written.
func (s *JSONStorage) CreateRun(_ context.Context, rc config.RunConfig, batch domain.Batch) error {
	output := domain.RunExport{
		Meta: domain.RunExportMeta{
			Host:       rc.Host,
			ProjectKey: rc.ProjectKey,
			Total:      len(batch),
			Statuses:   batch.Count(),
			Timestamp:  time.Now().Format(time.RFC3339),
		},
		Options: rc.Options,
		Items:   batch,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal test run: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write test run: %w", err)
	}
	return nil
}
