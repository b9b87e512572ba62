package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"time"

	"zrep/internal/domain"
	"zrep/internal/errors"
)

type junitSuite struct {
	Name   string       `xml:"name,attr"`
	Cases  []junitCase  `xml:"testcase"`
	Suites []junitSuite `xml:"testsuite"`
}

type junitCase struct {
	Name      string    `xml:"name,attr"`
	Classname string    `xml:"classname,attr"`
	Time      string    `xml:"time,attr"`
	Failure   *struct{} `xml:"failure"`
	Error     *struct{} `xml:"error"`
	Skipped   *struct{} `xml:"skipped"`
}

// JUnitParser parses JUnit XML with either <testsuites> or <testsuite> as root.
// The suite name is the project segment of the title path.
type JUnitParser struct{}

// NewJUnitParser creates a new JUnitParser
func NewJUnitParser() *JUnitParser {
	return &JUnitParser{}
}

// Name returns the parser name.
func (p *JUnitParser) Name() string {
	return "junit"
}

// Parse decodes the document and emits every test case.
func (p *JUnitParser) Parse(r io.Reader, emit func(domain.TestEvent)) error {
	// The root element is decoded as a suite either way: <testsuites> only
	// differs by holding no test cases of its own.
	var root junitSuite
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return errors.Wrap(errors.ErrParseFailed, err.Error())
	}

	p.walk(root, emit)
	return nil
}

func (p *JUnitParser) walk(suite junitSuite, emit func(domain.TestEvent)) {
	for _, tc := range suite.Cases {
		emit(domain.TestEvent{
			TitlePath: []string{"", suite.Name, tc.Classname, tc.Name},
			Title:     tc.Name,
			Status:    junitStatus(tc),
			Duration:  junitDuration(tc.Time),
		})
	}
	for _, child := range suite.Suites {
		p.walk(child, emit)
	}
}

func junitStatus(tc junitCase) domain.RunnerStatus {
	switch {
	case tc.Failure != nil, tc.Error != nil:
		return domain.RunnerFailed
	case tc.Skipped != nil:
		return domain.RunnerSkipped
	default:
		return domain.RunnerPassed
	}
}

func junitDuration(seconds string) time.Duration {
	s, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
