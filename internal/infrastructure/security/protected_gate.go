package security

import (
	"fmt"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// ProtectedGate blocks edits to protected files and directories.
// Warn patterns never block; they only attach a warning to the decision.
type ProtectedGate struct {
	protected []domain.PathPattern
	warn      []domain.PathPattern
	logger    ports.Logger
}

// NewProtectedGate compiles the protected and warn rule tables.
func NewProtectedGate(rules domain.ProtectedRules, log ports.Logger) (*ProtectedGate, error) {
	protected, err := domain.ParsePathPatterns(rules.Patterns)
	if err != nil {
		return nil, err
	}
	warn, err := domain.ParsePathPatterns(rules.Warn)
	if err != nil {
		return nil, err
	}
	return &ProtectedGate{protected: protected, warn: warn, logger: log}, nil
}

// Evaluate implements ports.PathGate.
func (g *ProtectedGate) Evaluate(filePath string) domain.Decision {
	decision := g.decide(filePath)
	if g.logger != nil {
		g.logger.Debug("protected-file gate", map[string]interface{}{
			"path":    filePath,
			"allowed": decision.Allowed(),
			"rule":    decision.MatchedRule,
		})
	}
	return decision
}

func (g *ProtectedGate) decide(filePath string) domain.Decision {
	normalized := normalizePath(filePath)

	if pattern, ok := firstMatch(normalized, g.protected, matchSegment); ok {
		return domain.Deny(pattern.Raw, protectedReason(pattern))
	}

	decision := domain.Allow()
	if pattern, ok := firstMatch(normalized, g.warn, matchSegment); ok {
		decision.MatchedRule = pattern.Raw
		decision.Warnings = append(decision.Warnings, fmt.Sprintf("editing watched file (%s): %s", pattern.Raw, filePath))
	}
	return decision
}

func protectedReason(pattern domain.PathPattern) string {
	switch pattern.Kind {
	case domain.PatternDirectory:
		return "protected directory: " + pattern.Raw
	case domain.PatternSuffix:
		return "protected file type: " + pattern.Raw
	default:
		return "protected file: " + pattern.Raw
	}
}

var _ ports.PathGate = (*ProtectedGate)(nil)
