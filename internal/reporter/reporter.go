// Package reporter collects finished tests tagged with a Zephyr test case id
// and submits them as one test run when the run ends.
package reporter

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"zrep/internal/config"
	"zrep/internal/domain"
)

// Submitter creates a test run from a batch of results.
type Submitter interface {
	CreateRun(ctx context.Context, rc config.RunConfig, batch domain.Batch) error
}

// Reporter implements the begin / test end / end lifecycle of a test run.
// OnTestEnd is safe for concurrent use.
type Reporter struct {
	submitter Submitter
	logger    zerolog.Logger
	now       func() time.Time

	mu      sync.Mutex
	run     config.RunConfig
	begun   bool
	results domain.Batch
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClock replaces the clock used for execution dates.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// New creates a Reporter that hands the batch to submitter.
func New(submitter Submitter, logger zerolog.Logger, opts ...Option) *Reporter {
	r := &Reporter{
		submitter: submitter,
		logger:    logger.With().Str("component", "reporter").Str("run_id", uuid.NewString()).Logger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnBegin stores the resolved settings. It must be called before any test ends.
func (r *Reporter) OnBegin(rc config.RunConfig) error {
	if err := rc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.run = rc
	r.begun = true
	r.results = nil

	r.logger.Debug().
		Str("host", rc.Host).
		Str("project_key", rc.ProjectKey).
		Msg("run started")
	return nil
}

// OnTestEnd records the test when its title carries a test case id.
// Untagged tests are ignored.
func (r *Reporter) OnTestEnd(event domain.TestEvent) {
	id, ok := extractTestCaseID(event.Title)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.begun {
		r.logger.Debug().Str("title", event.Title).Msg("test ended before run start, ignoring")
		return
	}

	result := domain.TestResult{
		TestCaseKey:   r.run.ProjectKey + "-" + id,
		Status:        domain.ZephyrStatus(event.Status),
		Environment:   environmentOf(event),
		ExecutionDate: domain.FormatExecutionDate(r.now()),
	}
	r.results = append(r.results, result)

	r.logger.Debug().
		Str("test_case_key", result.TestCaseKey).
		Str("status", string(result.Status)).
		Str("environment", result.Environment).
		Msg("test recorded")
}

// OnEnd submits every recorded result in one call. Submission errors are
// returned as is.
func (r *Reporter) OnEnd(ctx context.Context) error {
	batch := r.Results()
	if len(batch) == 0 {
		r.logger.Info().Msgf("There are no tests with such %s key pattern", TestCaseKeyPattern)
		return nil
	}

	r.mu.Lock()
	rc := r.run
	r.mu.Unlock()

	r.logger.Debug().Int("results", len(batch)).Msg("submitting test run")
	return r.submitter.CreateRun(ctx, rc, batch)
}

// Results returns a copy of the results recorded so far.
func (r *Reporter) Results() domain.Batch {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(domain.Batch, len(r.results))
	copy(out, r.results)
	return out
}
