package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, ".claude")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tplguard.yaml"), []byte(body), 0o600))
}

func TestDefaultConfigMatchesTemplateRules(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{".git/"}, cfg.Protected.Patterns)
	assert.Empty(t, cfg.Protected.Warn)
	assert.Contains(t, cfg.Markdown.Allowed, "docs/")
	assert.Contains(t, cfg.Markdown.Blocked, "notes.md")
	assert.Equal(t, ".claude/hookify.*.local.md", cfg.Validator.RuleGlob)
	assert.Equal(t, []string{"/pm", "/lead", "/dev", "/qa"}, cfg.Validator.Roles)
	assert.Len(t, cfg.Validator.RequiredFiles, 10)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	root := t.TempDir()
	loader := NewFileLoader("", root)

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, loader.Exists())

	defaults, err := DefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoadHydratesOmittedLists(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
protected:
  patterns: [".git/", "*.pem"]
  warn: []
validator:
  roles: ["/pm"]
`)
	loader := NewFileLoader("", root)
	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, loader.Exists())

	assert.Equal(t, []string{".git/", "*.pem"}, cfg.Protected.Patterns)
	assert.Empty(t, cfg.Protected.Warn)
	assert.Equal(t, []string{"/pm"}, cfg.Validator.Roles)
	assert.Contains(t, cfg.Markdown.Blocked, "scratch.md")
	assert.Equal(t, ".claude/commands", cfg.Validator.CommandsDir)
	assert.Equal(t, "1", cfg.ConfigFormatVersion)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "markdown: [unterminated")

	_, err := NewFileLoader("", root).Load(context.Background())
	assert.Error(t, err)
}

func TestOverridePathWins(t *testing.T) {
	root := t.TempDir()
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("markdown:\n  blocked: [draft.md]\n"), 0o600))

	loader := NewFileLoader(custom, root)
	assert.Equal(t, custom, loader.Path())

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"draft.md"}, cfg.Markdown.Blocked)
}

func TestWriteDefaultsAndBackup(t *testing.T) {
	root := t.TempDir()
	loader := NewFileLoader("", root)

	require.NoError(t, loader.WriteDefaults())
	assert.True(t, loader.Exists())

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	defaults, err := DefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)

	backup, err := loader.Backup()
	require.NoError(t, err)
	original, err := os.ReadFile(loader.Path())
	require.NoError(t, err)
	copied, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestBackupWithoutFile(t *testing.T) {
	_, err := NewFileLoader("", t.TempDir()).Backup()
	assert.Error(t, err)
}
