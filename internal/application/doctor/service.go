// Package doctor diagnoses a tplguard installation inside a project.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// Probe paths with a known outcome under the default rules.
const (
	probeStrayMarkdown = "notes.md"
	probeDocsMarkdown  = "docs/guide.md"
	probeGitInternals  = ".git/config"
)

// Service runs installation diagnostics.
type Service struct {
	Root          string
	ConfigSource  string
	ConfigError   error
	SettingsFile  string
	MarkdownGate  ports.PathGate
	ProtectedGate ports.PathGate
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck
	if err := ctx.Err(); err != nil {
		return domain.HealthReport{}, err
	}

	checks = append(checks, s.rootCheck())
	checks = append(checks, s.configCheck())
	checks = append(checks, s.markdownGateCheck())
	checks = append(checks, s.protectedGateCheck())
	checks = append(checks, s.registrationChecks()...)

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) rootCheck() domain.HealthCheck {
	info, err := os.Stat(filepath.Join(s.Root, domain.ConfigDirName))
	if err != nil || !info.IsDir() {
		return warn("Project root", fmt.Sprintf("%s has no %s directory", s.Root, domain.ConfigDirName))
	}
	return ok("Project root", s.Root)
}

func (s *Service) configCheck() domain.HealthCheck {
	if s.ConfigError != nil {
		return fail("Config file", fmt.Sprintf("ignored, using defaults: %v", s.ConfigError))
	}
	return ok("Config file", s.ConfigSource)
}

func (s *Service) markdownGateCheck() domain.HealthCheck {
	if s.MarkdownGate == nil {
		return fail("Markdown gate", "not initialized")
	}
	if s.MarkdownGate.Evaluate(probeStrayMarkdown).Allowed() {
		return warn("Markdown gate", fmt.Sprintf("%s at the project root is allowed", probeStrayMarkdown))
	}
	if !s.MarkdownGate.Evaluate(probeDocsMarkdown).Allowed() {
		return warn("Markdown gate", fmt.Sprintf("%s is blocked", probeDocsMarkdown))
	}
	return ok("Markdown gate", "rules loaded")
}

func (s *Service) protectedGateCheck() domain.HealthCheck {
	if s.ProtectedGate == nil {
		return fail("Protected-file gate", "not initialized")
	}
	if s.ProtectedGate.Evaluate(probeGitInternals).Allowed() {
		return warn("Protected-file gate", fmt.Sprintf("%s is not protected", probeGitInternals))
	}
	return ok("Protected-file gate", "rules loaded")
}

// registrationChecks reports whether each gate is wired as a PreToolUse hook.
func (s *Service) registrationChecks() []domain.HealthCheck {
	const name = "Hook registration"
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(s.SettingsFile)))
	if err != nil {
		return []domain.HealthCheck{warn(name, fmt.Sprintf("cannot read %s: %v", s.SettingsFile, err))}
	}
	var settings struct {
		Hooks map[string][]domain.HookGroup `json:"hooks"`
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return []domain.HealthCheck{warn(name, fmt.Sprintf("cannot parse %s: %v", s.SettingsFile, err))}
	}

	registered := map[string]bool{}
	for _, group := range settings.Hooks["PreToolUse"] {
		for _, hook := range group.Hooks {
			if gate, found := hookSubcommand(hook.Command); found {
				registered[gate] = true
			}
		}
	}

	var checks []domain.HealthCheck
	for _, gate := range []string{domain.HookBlockMarkdown, domain.HookProtectFiles} {
		label := "hook " + gate
		if registered[gate] {
			checks = append(checks, ok(name, label+" registered"))
		} else {
			checks = append(checks, warn(name, label+" not registered for PreToolUse"))
		}
	}
	return checks
}

// hookSubcommand finds the gate name following a "hook" argument in a shell
// command line, e.g. "protect-files" in `"$DIR/tplguard" hook protect-files`.
func hookSubcommand(command string) (string, bool) {
	args, err := shellquote.Split(command)
	if err != nil {
		return "", false
	}
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "hook" {
			return args[i+1], true
		}
	}
	return "", false
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
