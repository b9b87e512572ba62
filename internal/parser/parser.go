// Package parser turns test runner reports into per-test events.
package parser

import (
	"io"
	"sort"

	"zrep/internal/domain"
	"zrep/internal/errors"
)

// Parser reads a runner report and emits one event per finished test.
type Parser interface {
	Name() string
	Parse(r io.Reader, emit func(domain.TestEvent)) error
}

// ReporterConfigured is implemented by parsers whose report embeds the
// runner's reporter list. Entries are available once Parse returned or
// emitted its first event.
type ReporterConfigured interface {
	ReporterEntries() [][]any
}

var registry = map[string]func() Parser{
	"gotest":     func() Parser { return NewGoTestParser() },
	"playwright": func() Parser { return NewPlaywrightParser() },
	"junit":      func() Parser { return NewJUnitParser() },
}

// extensions are the report file extensions looked for in a directory
var extensions = map[string][]string{
	"gotest":     {".json", ".jsonl", ".log"},
	"playwright": {".json"},
	"junit":      {".xml"},
}

// ForFormat returns a new parser for the named format.
func ForFormat(name string) (Parser, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q (supported: %v)", name, Formats())
	}
	return factory(), nil
}

// Extensions returns the report file extensions of the named format.
func Extensions(name string) ([]string, error) {
	exts, ok := extensions[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q (supported: %v)", name, Formats())
	}
	return exts, nil
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collect parses r into a slice of events.
func Collect(p Parser, r io.Reader) ([]domain.TestEvent, error) {
	var events []domain.TestEvent
	err := p.Parse(r, func(e domain.TestEvent) {
		events = append(events, e)
	})
	return events, err
}
