package domain

import (
	"errors"
	"fmt"
	"strings"
)

// PatternKind classifies a path rule string.
type PatternKind int

const (
	// PatternLiteral matches a file name, e.g. "credentials.json".
	PatternLiteral PatternKind = iota
	// PatternDirectory matches a directory, written with a trailing slash, e.g. ".git/".
	PatternDirectory
	// PatternSuffix matches a name suffix, written with a leading star, e.g. "*.pem".
	PatternSuffix
)

func (k PatternKind) String() string {
	switch k {
	case PatternDirectory:
		return "directory"
	case PatternSuffix:
		return "suffix"
	default:
		return "literal"
	}
}

var (
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// PathPattern is a parsed rule. Value is lowercased and stripped of the
// kind marker ("*" prefix or "/" suffix).
type PathPattern struct {
	Raw   string
	Kind  PatternKind
	Value string
}

// ParsePathPattern classifies raw into one of the three supported kinds.
func ParsePathPattern(raw string) (PathPattern, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PathPattern{}, ErrEmptyPattern
	}
	normalized := strings.ToLower(strings.ReplaceAll(trimmed, "\\", "/"))

	switch {
	case strings.HasPrefix(normalized, "*"):
		value := normalized[1:]
		if value == "" || strings.ContainsAny(value, "*/") {
			return PathPattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
		}
		return PathPattern{Raw: trimmed, Kind: PatternSuffix, Value: value}, nil
	case strings.HasSuffix(normalized, "/"):
		value := strings.TrimSuffix(normalized, "/")
		if value == "" || strings.Contains(value, "*") {
			return PathPattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
		}
		return PathPattern{Raw: trimmed, Kind: PatternDirectory, Value: value}, nil
	default:
		if strings.Contains(normalized, "*") {
			return PathPattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
		}
		return PathPattern{Raw: trimmed, Kind: PatternLiteral, Value: normalized}, nil
	}
}

// ParsePathPatterns parses every entry, stopping at the first invalid one.
func ParsePathPatterns(raw []string) ([]PathPattern, error) {
	patterns := make([]PathPattern, 0, len(raw))
	for _, entry := range raw {
		pattern, err := ParsePathPattern(entry)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}
