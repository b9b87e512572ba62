// Package discovery finds report files below a directory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner scans for report files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all files below root whose extension is one of exts, sorted by path
func (s *Scanner) Scan(root string, exts []string) ([]string, error) {
	var reports []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("report path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		for _, want := range exts {
			if strings.EqualFold(ext, want) {
				reports = append(reports, path)
				break
			}
		}
		return nil
	})

	sort.Strings(reports)
	return reports, err
}
