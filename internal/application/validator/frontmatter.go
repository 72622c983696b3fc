package validator

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

var frontmatterPattern = regexp.MustCompile(`(?s)\A` + domain.FrontmatterDelimiter + `\n(.*?)\n` + domain.FrontmatterDelimiter)

// extractFrontmatter returns the body of a leading "---" delimited block.
func extractFrontmatter(content string) (string, bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	match := frontmatterPattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// parseFrontmatter decodes the leading block of content as a YAML mapping.
func parseFrontmatter(content string) (map[string]interface{}, error) {
	block, ok := extractFrontmatter(content)
	if !ok {
		return nil, ErrNoFrontmatter
	}
	fields := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func hasFrontmatter(content string) bool {
	return strings.HasPrefix(content, domain.FrontmatterDelimiter)
}
