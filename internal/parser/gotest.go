package parser

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"

	"zrep/internal/domain"
	"zrep/internal/errors"
)

const maxLineSize = 10 * 1024 * 1024

// goTestEvent is a single line of `go test -json` output.
type goTestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// GoTestParser parses the `go test -json` stream. Events are emitted as
// soon as their line is read.
//
// The package is the project segment of the title path. Subtest names are
// split on "/" and underscores in the leaf are turned back into spaces, so
//
//	t.Run("[10] login works", ...)
//
// yields the title "[10] login works".
type GoTestParser struct{}

// NewGoTestParser creates a new GoTestParser
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

// Name returns the parser name.
func (p *GoTestParser) Name() string {
	return "gotest"
}

// Parse reads r until EOF.
func (p *GoTestParser) Parse(r io.Reader, emit func(domain.TestEvent)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || line[0] != '{' {
			// build output and other noise
			continue
		}

		var event goTestEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}
		if event.Test == "" {
			continue
		}

		status, ok := goTestStatus(event.Action)
		if !ok {
			continue
		}

		segments := strings.Split(event.Test, "/")
		titlePath := append([]string{"", event.Package}, segments...)
		emit(domain.TestEvent{
			TitlePath: titlePath,
			Title:     strings.ReplaceAll(segments[len(segments)-1], "_", " "),
			Status:    status,
			Duration:  time.Duration(event.Elapsed * float64(time.Second)),
		})
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrParseFailed, err.Error())
	}
	return nil
}

func goTestStatus(action string) (domain.RunnerStatus, bool) {
	switch action {
	case "pass":
		return domain.RunnerPassed, true
	case "fail":
		return domain.RunnerFailed, true
	case "skip":
		return domain.RunnerSkipped, true
	}
	return "", false
}
