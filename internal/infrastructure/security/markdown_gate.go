package security

import (
	"strings"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// RuleRootLevel names the fallback rule for unmatched shallow markdown files.
const RuleRootLevel = "root-level"

// MarkdownGate keeps stray markdown files out of the project root.
type MarkdownGate struct {
	allowed []domain.PathPattern
	blocked []domain.PathPattern
	logger  ports.Logger
}

// NewMarkdownGate compiles the markdown rule tables.
func NewMarkdownGate(rules domain.MarkdownRules, log ports.Logger) (*MarkdownGate, error) {
	allowed, err := domain.ParsePathPatterns(rules.Allowed)
	if err != nil {
		return nil, err
	}
	blocked, err := domain.ParsePathPatterns(rules.Blocked)
	if err != nil {
		return nil, err
	}
	return &MarkdownGate{allowed: allowed, blocked: blocked, logger: log}, nil
}

// Evaluate implements ports.PathGate.
func (g *MarkdownGate) Evaluate(filePath string) domain.Decision {
	decision := g.decide(filePath)
	if g.logger != nil {
		g.logger.Debug("markdown gate", map[string]interface{}{
			"path":    filePath,
			"allowed": decision.Allowed(),
			"rule":    decision.MatchedRule,
		})
	}
	return decision
}

func (g *MarkdownGate) decide(filePath string) domain.Decision {
	normalized := normalizePath(filePath)
	if !strings.HasSuffix(normalized, domain.MarkdownExtension) {
		return domain.Allow()
	}

	if _, ok := firstMatch(normalized, g.allowed, matchLoose); ok {
		return domain.Allow()
	}

	if pattern, ok := firstMatch(normalized, g.blocked, matchSegment); ok {
		return domain.Deny(pattern.Raw, "scratch markdown file is not allowed: "+pattern.Raw)
	}

	if strings.Count(normalized, "/") <= domain.MaxRootSeparators {
		return domain.Deny(RuleRootLevel, "random .md files are not allowed at the project root")
	}
	return domain.Allow()
}

// ApprovedLocations lists the directory markers documentation may live under.
func (g *MarkdownGate) ApprovedLocations() []string {
	var dirs []string
	for _, pattern := range g.allowed {
		if pattern.Kind == domain.PatternDirectory {
			dirs = append(dirs, pattern.Raw)
		}
	}
	return dirs
}

var _ ports.PathGate = (*MarkdownGate)(nil)
