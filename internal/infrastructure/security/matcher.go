package security

import (
	"path"
	"strings"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// normalizePath unifies separators and case so rules match on any platform.
func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
}

// baseName returns the final element of a normalized path.
func baseName(normalized string) string {
	return path.Base(normalized)
}

// hasDirSegment reports whether dir appears as a whole directory segment of
// normalized, e.g. ".git" in "repo/.git/config" but not in ".gitignore".
func hasDirSegment(normalized, dir string) bool {
	segments := strings.Split(normalized, "/")
	for _, segment := range segments[:len(segments)-1] {
		if segment == dir {
			return true
		}
	}
	return false
}

// matchSegment applies a pattern the strict way: directories by whole segment,
// literals by exact base name, suffixes against the base name.
func matchSegment(normalized string, pattern domain.PathPattern) bool {
	switch pattern.Kind {
	case domain.PatternDirectory:
		return hasDirSegment(normalized, pattern.Value)
	case domain.PatternSuffix:
		return strings.HasSuffix(baseName(normalized), pattern.Value)
	default:
		return baseName(normalized) == pattern.Value
	}
}

// matchLoose applies a pattern the permissive way used for allow lists:
// directory markers anywhere in the path, literals and suffixes at its end.
func matchLoose(normalized string, pattern domain.PathPattern) bool {
	switch pattern.Kind {
	case domain.PatternDirectory:
		return strings.Contains(normalized, pattern.Value+"/")
	default:
		return strings.HasSuffix(normalized, pattern.Value)
	}
}

func firstMatch(normalized string, patterns []domain.PathPattern, match func(string, domain.PathPattern) bool) (domain.PathPattern, bool) {
	for _, pattern := range patterns {
		if match(normalized, pattern) {
			return pattern, true
		}
	}
	return domain.PathPattern{}, false
}
