// Package storage writes test runs to disk instead of submitting them.
package storage

import (
	"context"

	"zrep/internal/config"
	"zrep/internal/domain"
)

// Storage persists a finished test run. It is used in place of the Zephyr
// client, so it takes the same arguments.
type Storage interface {
	CreateRun(ctx context.Context, rc config.RunConfig, batch domain.Batch) error
}

// JSONStorage writes the run to a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage writing to path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the output file.
func (s *JSONStorage) Path() string {
	return s.path
}
