package parser

import (
	"encoding/json"
	"io"
	"time"

	"zrep/internal/domain"
	"zrep/internal/errors"
)

// defaultBrowserName is the browser Playwright launches when a project
// names none.
const defaultBrowserName = "chromium"

type pwReport struct {
	Config pwConfig  `json:"config"`
	Suites []pwSuite `json:"suites"`
}

type pwConfig struct {
	Reporter [][]any     `json:"reporter"`
	Projects []pwProject `json:"projects"`
}

type pwProject struct {
	Name     string         `json:"name"`
	Use      map[string]any `json:"use"`
	Metadata map[string]any `json:"metadata"`
}

type pwSuite struct {
	Title  string    `json:"title"`
	File   string    `json:"file"`
	Specs  []pwSpec  `json:"specs"`
	Suites []pwSuite `json:"suites"`
}

type pwSpec struct {
	Title string   `json:"title"`
	Tests []pwTest `json:"tests"`
}

type pwTest struct {
	ProjectName string     `json:"projectName"`
	Status      string     `json:"status"`
	Results     []pwResult `json:"results"`
}

type pwResult struct {
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
}

// PlaywrightParser parses the output of Playwright's JSON reporter.
// Every result attempt becomes one event, as Playwright reports every retry
// to its reporters.
type PlaywrightParser struct {
	entries [][]any
}

// NewPlaywrightParser creates a new PlaywrightParser
func NewPlaywrightParser() *PlaywrightParser {
	return &PlaywrightParser{}
}

// Name returns the parser name.
func (p *PlaywrightParser) Name() string {
	return "playwright"
}

// ReporterEntries returns config.reporter of the last parsed report.
func (p *PlaywrightParser) ReporterEntries() [][]any {
	return p.entries
}

// Parse decodes the whole report, then emits its tests in file order.
func (p *PlaywrightParser) Parse(r io.Reader, emit func(domain.TestEvent)) error {
	var report pwReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return errors.Wrap(errors.ErrParseFailed, err.Error())
	}
	p.entries = report.Config.Reporter

	browsers := make(map[string]string, len(report.Config.Projects))
	for _, project := range report.Config.Projects {
		browsers[project.Name] = browserName(project)
	}

	for _, suite := range report.Suites {
		p.walk(suite, nil, browsers, emit)
	}
	return nil
}

// walk emits the specs of suite and its nested suites. parents holds the
// titles of the enclosing suites, file suite first.
func (p *PlaywrightParser) walk(suite pwSuite, parents []string, browsers map[string]string, emit func(domain.TestEvent)) {
	path := append(append([]string(nil), parents...), suite.Title)

	for _, spec := range suite.Specs {
		for _, test := range spec.Tests {
			titlePath := make([]string, 0, len(path)+3)
			titlePath = append(titlePath, "", test.ProjectName)
			titlePath = append(titlePath, path...)
			titlePath = append(titlePath, spec.Title)

			event := domain.TestEvent{
				TitlePath:   titlePath,
				Title:       spec.Title,
				BrowserName: browserOf(browsers, test.ProjectName),
			}

			if len(test.Results) == 0 {
				event.Status = outcomeStatus(test.Status)
				emit(event)
				continue
			}
			for _, result := range test.Results {
				event.Status = domain.RunnerStatus(result.Status)
				event.Duration = time.Duration(result.Duration * float64(time.Millisecond))
				emit(event)
			}
		}
	}

	for _, child := range suite.Suites {
		p.walk(child, path, browsers, emit)
	}
}

func browserName(project pwProject) string {
	for _, m := range []map[string]any{project.Use, project.Metadata} {
		if name, ok := m["browserName"].(string); ok && name != "" {
			return name
		}
	}
	return ""
}

func browserOf(browsers map[string]string, project string) string {
	if name := browsers[project]; name != "" {
		return name
	}
	return defaultBrowserName
}

// outcomeStatus maps a test outcome for tests that never produced a result.
func outcomeStatus(outcome string) domain.RunnerStatus {
	switch outcome {
	case "expected", "flaky":
		return domain.RunnerPassed
	case "unexpected":
		return domain.RunnerFailed
	default:
		return domain.RunnerSkipped
	}
}
