package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResultFailMarksResult(t *testing.T) {
	result := NewCheckResult("Structure", false)
	result.Pass("present: %s", "CLAUDE.md")
	assert.True(t, result.Passed)

	result.Fail("missing: %s", ".gitignore")
	assert.False(t, result.Passed)
	assert.Equal(t, []CheckLine{
		{Status: StatusPass, Message: "present: CLAUDE.md"},
		{Status: StatusFail, Message: "missing: .gitignore"},
	}, result.Lines)
}

func TestValidationReportIgnoresAdvisoryFailures(t *testing.T) {
	hard := NewCheckResult("JSON configs", false)
	advisory := NewCheckResult("Permissions", true)
	advisory.Fail("unreadable")
	advisory.Warn("allow not configured: Bash")

	report := ValidationReport{Results: []CheckResult{hard, advisory}}
	assert.True(t, report.Passed())
	assert.True(t, advisory.HasWarnings())

	hard.Fail("invalid JSON")
	report.Results[0] = hard
	assert.False(t, report.Passed())
}

func TestDecisionExitCodes(t *testing.T) {
	assert.Equal(t, ExitAllow, Allow().ExitCode())
	denied := Deny(".git/", "protected directory: .git/")
	assert.False(t, denied.Allowed())
	assert.Equal(t, ExitDeny, denied.ExitCode())
}
