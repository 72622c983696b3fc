package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	infraconfig "github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/config"
)

const (
	guideDoc = "# Guide\n\nWorkflow: /pm -> /lead -> /dev -> /qa\n"

	settingsJSON = `{
  "hooks": {
    "PreToolUse": [
      {"matcher": "Write", "hooks": [{"type": "command", "command": ".claude/bin/tplguard hook block-md"}]},
      {"matcher": "Edit|Write", "hooks": [{"type": "command", "command": ".claude/bin/tplguard hook protect-files"}]}
    ]
  }
}`

	settingsExampleJSON = `{
  "permissions": {
    "allow": ["Read", "Write", "Edit", "Bash"],
    "deny": ["Bash(rm -rf /)"]
  }
}`

	commandDoc = "---\ndescription: product manager\n---\n\n## Role\nOwns requirements.\n"

	hookifyRule = "---\nname: block-console-log\nenabled: true\nevent: file\npattern: console\\.log\\(\n---\n\nAvoid console.log.\n"
)

// writeTemplate lays out a complete template tree under a temp dir.
func writeTemplate(t *testing.T) string {
	t.Helper()
	return writeTemplateIn(t, t.TempDir())
}

// writeTemplateIn lays out a complete template tree under root.
func writeTemplateIn(t *testing.T, root string) string {
	t.Helper()
	files := map[string]string{
		"CLAUDE.md":                            guideDoc,
		".claude/settings.json":                settingsJSON,
		".claude/settings.local.json.example":  settingsExampleJSON,
		".claude/rules/methodology.md":         guideDoc,
		".claude/rules/security.md":            "# Security\n",
		".claude/hookify.console-log.local.md": hookifyRule,
		".claude/commands/pm.md":               commandDoc,
		".claude/commands/dev.md":              commandDoc,
		"commands/pm.md":                       commandDoc,
		"commands/lead.md":                     commandDoc,
		"commands/dev.md":                      commandDoc,
		"commands/qa.md":                       commandDoc,
		".gitignore":                           "node_modules/\n",
	}
	for rel, body := range files {
		writeFile(t, root, rel, body)
	}
	return root
}

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func removeFile(t *testing.T, root, rel string) {
	t.Helper()
	require.NoError(t, os.Remove(filepath.Join(root, filepath.FromSlash(rel))))
}

func newService(t *testing.T) *Service {
	t.Helper()
	cfg, err := infraconfig.DefaultConfig()
	require.NoError(t, err)
	svc, err := NewService(cfg.Validator, nil)
	require.NoError(t, err)
	return svc
}
