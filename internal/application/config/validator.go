package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateMarkdown(cfg.Markdown); err != nil {
		return err
	}
	if err := validateProtected(cfg.Protected); err != nil {
		return err
	}
	return validateValidator(cfg.Validator)
}

func validateMarkdown(rules domain.MarkdownRules) error {
	if _, err := domain.ParsePathPatterns(rules.Allowed); err != nil {
		return fmt.Errorf("markdown.allowed: %w", err)
	}
	blocked, err := domain.ParsePathPatterns(rules.Blocked)
	if err != nil {
		return fmt.Errorf("markdown.blocked: %w", err)
	}
	for _, pattern := range blocked {
		if pattern.Kind != domain.PatternLiteral {
			return fmt.Errorf("markdown.blocked: %q must be a file name", pattern.Raw)
		}
	}
	return nil
}

func validateProtected(rules domain.ProtectedRules) error {
	if _, err := domain.ParsePathPatterns(rules.Patterns); err != nil {
		return fmt.Errorf("protected.patterns: %w", err)
	}
	if _, err := domain.ParsePathPatterns(rules.Warn); err != nil {
		return fmt.Errorf("protected.warn: %w", err)
	}
	return nil
}

func validateValidator(settings domain.ValidatorSettings) error {
	if settings.RuleGlob == "" {
		return errors.New("validator.rule_glob must be set")
	}
	if _, err := path.Match(filepath.ToSlash(settings.RuleGlob), ""); err != nil {
		return fmt.Errorf("validator.rule_glob invalid: %w", err)
	}
	if settings.RoleMarker == "" {
		return errors.New("validator.role_marker must be set")
	}
	if _, err := regexp.Compile(settings.RoleMarker); err != nil {
		return fmt.Errorf("validator.role_marker invalid: %w", err)
	}
	for _, rel := range append(append([]string{}, settings.RequiredFiles...), settings.JSONFiles...) {
		if err := validateRelative(rel); err != nil {
			return err
		}
	}
	for _, role := range settings.Roles {
		if strings.TrimSpace(role) == "" {
			return errors.New("validator.roles cannot contain empty entries")
		}
	}
	return nil
}

func validateRelative(rel string) error {
	if strings.TrimSpace(rel) == "" {
		return errors.New("validator paths cannot be empty")
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") {
		return fmt.Errorf("validator path %s must be relative to the project root", rel)
	}
	return nil
}
