package domain

// RunnerStatus is the verdict reported by the test runner.
type RunnerStatus string

// Runner verdicts understood by the status mapping. Runners may report others.
const (
	RunnerPassed      RunnerStatus = "passed"
	RunnerFailed      RunnerStatus = "failed"
	RunnerSkipped     RunnerStatus = "skipped"
	RunnerTimedOut    RunnerStatus = "timedOut"
	RunnerInterrupted RunnerStatus = "interrupted"
)

// Status is a Zephyr Scale execution status.
type Status string

// Zephyr Scale execution statuses.
const (
	StatusPass        Status = "Pass"
	StatusFail        Status = "Fail"
	StatusNotExecuted Status = "Not Executed"
	StatusBlocked     Status = "Blocked"
)

// ZephyrStatus maps a runner verdict to the Zephyr vocabulary.
// Unknown verdicts map to StatusNotExecuted.
func ZephyrStatus(s RunnerStatus) Status {
	switch s {
	case RunnerPassed:
		return StatusPass
	case RunnerFailed:
		return StatusFail
	case RunnerSkipped:
		return StatusNotExecuted
	case RunnerTimedOut:
		return StatusBlocked
	default:
		return StatusNotExecuted
	}
}
