package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

func TestRunCompleteTemplatePasses(t *testing.T) {
	root := writeTemplate(t)
	report := newService(t).Run(context.Background(), root)

	require.Len(t, report.Results, 7)
	assert.True(t, report.Passed())
	for _, result := range report.Results {
		assert.True(t, result.Passed, result.Name)
		assert.False(t, result.HasWarnings(), "%s: %+v", result.Name, result.Lines)
	}
	assert.Equal(t, root, report.Root)
}

func TestRunMissingRequiredFileFailsStructureOnly(t *testing.T) {
	root := writeTemplate(t)
	removeFile(t, root, ".claude/rules/security.md")

	report := newService(t).Run(context.Background(), root)
	assert.False(t, report.Passed())

	for _, result := range report.Results {
		if result.Name == CheckStructure {
			assert.False(t, result.Passed)
			assert.Contains(t, result.Lines, domain.CheckLine{Status: domain.StatusFail, Message: "missing: .claude/rules/security.md"})
			continue
		}
		assert.True(t, result.Passed, result.Name)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	root := writeTemplate(t)
	writeFile(t, root, ".claude/commands/qa.md", "no frontmatter here\n")
	svc := newService(t)

	first := svc.Run(context.Background(), root)
	second := svc.Run(context.Background(), root)
	assert.Equal(t, first, second)
}

func TestAdvisoryChecksNeverFlipAggregate(t *testing.T) {
	root := writeTemplate(t)
	writeFile(t, root, ".claude/settings.local.json.example", `{"permissions": {"allow": ["Read"]}}`)
	writeFile(t, root, ".claude/commands/lead.md", "plain text\n")
	writeFile(t, root, ".claude/settings.json", `{"hooks": {"BeforeEverything": []}}`)

	report := newService(t).Run(context.Background(), root)
	assert.True(t, report.Passed())
	for _, result := range report.Results {
		if result.Advisory {
			assert.True(t, result.HasWarnings(), result.Name)
		}
	}
}

func TestRunCheckRecoversPanics(t *testing.T) {
	svc := newService(t)
	check := Check{Name: "Exploding", run: func(string, *domain.CheckResult) { panic("boom") }}

	result := svc.RunCheck(check, t.TempDir())
	assert.False(t, result.Passed)
	require.NotEmpty(t, result.Lines)
	assert.Equal(t, "check aborted: boom", result.Lines[len(result.Lines)-1].Message)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := newService(t).Run(ctx, writeTemplate(t))
	assert.False(t, report.Passed())
	require.Len(t, report.Results, 7)
}

func TestCheckByNameUnknown(t *testing.T) {
	_, err := newService(t).CheckByName("Nope", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownCheck)
}

func TestNewServiceRejectsBadRoleMarker(t *testing.T) {
	_, err := NewService(domain.ValidatorSettings{RoleMarker: "(Role"}, nil)
	assert.ErrorIs(t, err, ErrRoleMarker)
}
