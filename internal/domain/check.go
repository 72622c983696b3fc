package domain

import "fmt"

// CheckStatus labels a single line of validator output.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusFail CheckStatus = "fail"
	StatusWarn CheckStatus = "warn"
	StatusInfo CheckStatus = "info"
)

// CheckLine is one message emitted while a check runs.
type CheckLine struct {
	Status  CheckStatus
	Message string
}

// CheckResult captures the outcome of one validator check.
// Advisory checks never affect the aggregate result.
type CheckResult struct {
	Name     string
	Advisory bool
	Passed   bool
	Lines    []CheckLine
}

// NewCheckResult starts a passing result.
func NewCheckResult(name string, advisory bool) CheckResult {
	return CheckResult{Name: name, Advisory: advisory, Passed: true}
}

func (r *CheckResult) Pass(format string, args ...interface{}) {
	r.add(StatusPass, format, args...)
}

func (r *CheckResult) Warn(format string, args ...interface{}) {
	r.add(StatusWarn, format, args...)
}

func (r *CheckResult) Info(format string, args ...interface{}) {
	r.add(StatusInfo, format, args...)
}

// Fail records a failure line and marks the result as failed.
func (r *CheckResult) Fail(format string, args ...interface{}) {
	r.Passed = false
	r.add(StatusFail, format, args...)
}

// HasWarnings reports whether any warning was recorded.
func (r CheckResult) HasWarnings() bool {
	for _, line := range r.Lines {
		if line.Status == StatusWarn {
			return true
		}
	}
	return false
}

func (r *CheckResult) add(status CheckStatus, format string, args ...interface{}) {
	r.Lines = append(r.Lines, CheckLine{Status: status, Message: fmt.Sprintf(format, args...)})
}

// ValidationReport aggregates check results in execution order.
type ValidationReport struct {
	Root    string
	Results []CheckResult
}

// Passed is the logical AND of every non-advisory check.
func (r ValidationReport) Passed() bool {
	for _, result := range r.Results {
		if !result.Advisory && !result.Passed {
			return false
		}
	}
	return true
}
