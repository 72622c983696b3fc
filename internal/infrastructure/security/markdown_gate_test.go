package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

func defaultMarkdownRules() domain.MarkdownRules {
	return domain.MarkdownRules{
		Allowed: []string{
			"memory-bank/", ".claude/", "README.md", "CHANGELOG.md", "CONTRIBUTING.md",
			"LICENSE.md", "CODE_OF_CONDUCT.md", "docs/", "documentation/", "api-docs/", "specs/", "spec/",
		},
		Blocked: []string{"temp.md", "tmp.md", "test.md", "notes.md", "scratch.md", "untitled.md"},
	}
}

func newMarkdownGate(t *testing.T) *MarkdownGate {
	t.Helper()
	gate, err := NewMarkdownGate(defaultMarkdownRules(), nil)
	require.NoError(t, err)
	return gate
}

func TestMarkdownGateIgnoresOtherExtensions(t *testing.T) {
	gate := newMarkdownGate(t)
	for _, path := range []string{"main.go", "notes.txt", "README", "temp.markdown", "a.md.bak", ""} {
		assert.True(t, gate.Evaluate(path).Allowed(), path)
	}
}

func TestMarkdownGateDecisions(t *testing.T) {
	gate := newMarkdownGate(t)

	tests := []struct {
		path    string
		allowed bool
		rule    string
	}{
		{path: "README.md", allowed: true},
		{path: "readme.MD", allowed: true},
		{path: "docs/architecture/overview.md", allowed: true},
		{path: "docs/notes.md", allowed: true},
		{path: "/home/dev/project/.claude/rules/security.md", allowed: true},
		{path: `memory-bank\progress.md`, allowed: true},
		{path: "packages/api/CHANGELOG.md", allowed: true},
		{path: "notes.md", allowed: false, rule: "notes.md"},
		{path: "src/scratch.md", allowed: false, rule: "scratch.md"},
		{path: "a/b/c/Untitled.md", allowed: false, rule: "untitled.md"},
		{path: "random.md", allowed: false, rule: RuleRootLevel},
		{path: "src/random.md", allowed: false, rule: RuleRootLevel},
		{path: "a/b/random.md", allowed: true},
		{path: `C:\work\design.md`, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			decision := gate.Evaluate(tt.path)
			assert.Equal(t, tt.allowed, decision.Allowed())
			if !tt.allowed {
				assert.Equal(t, tt.rule, decision.MatchedRule)
				assert.NotEmpty(t, decision.Reason)
				assert.Equal(t, domain.ExitDeny, decision.ExitCode())
			}
		})
	}
}

func TestMarkdownGateIsPure(t *testing.T) {
	gate := newMarkdownGate(t)
	first := gate.Evaluate("random.md")
	second := gate.Evaluate("random.md")
	assert.Equal(t, first, second)
}

func TestMarkdownGateApprovedLocations(t *testing.T) {
	gate := newMarkdownGate(t)
	assert.Equal(t, []string{"memory-bank/", ".claude/", "docs/", "documentation/", "api-docs/", "specs/", "spec/"}, gate.ApprovedLocations())
}

func TestNewMarkdownGateRejectsBadPattern(t *testing.T) {
	_, err := NewMarkdownGate(domain.MarkdownRules{Allowed: []string{"docs*/"}}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}
