// Package ports defines the interfaces between the application core and its adapters.
//
// The gates, the validator and the configuration loader are consumed through
// these interfaces so the cobra commands never depend on a concrete adapter.
package ports

import (
	"context"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// ConfigProvider loads the gate and validator configuration.
// Implementations typically read <root>/.claude/tplguard.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PathGate decides whether a write to a file path may proceed.
// Evaluate must be a pure function of the path and the gate's rule tables.
type PathGate interface {
	Evaluate(path string) domain.Decision
}

// TemplateValidator runs the template checks against a project root.
type TemplateValidator interface {
	Run(ctx context.Context, root string) domain.ValidationReport
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, no-op).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
