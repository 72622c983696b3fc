package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/security"
)

func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	path := filepath.Join(root, ".claude", "tplguard.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuildContainerWithoutConfigUsesDefaults(t *testing.T) {
	root := t.TempDir()

	container, err := BuildContainer(context.Background(), Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, root, container.Root)
	assert.Equal(t, SourceDefaults, container.ConfigSource)
	assert.NoError(t, container.ConfigError)
	assert.Equal(t, []string{".git/"}, container.Config.Protected.Patterns)
	assert.False(t, container.ProtectedGate.Evaluate(".git/config").Allowed())
}

func TestBuildContainerReadsProjectConfig(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "protected:\n  patterns: [\".env\", \"*.pem\"]\n")

	container, err := BuildContainer(context.Background(), Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, path, container.ConfigSource)
	assert.False(t, container.ProtectedGate.Evaluate("config/.env").Allowed())
	assert.False(t, container.ProtectedGate.Evaluate("certs/server.pem").Allowed())
	assert.True(t, container.ProtectedGate.Evaluate(".git/config").Allowed())
	assert.NotEmpty(t, container.Config.Markdown.Blocked)
}

func TestBuildContainerFallsBackOnBrokenConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not yaml", body: "markdown: [unclosed\n"},
		{name: "bad pattern", body: "protected:\n  patterns: [\"*\"]\n"},
		{name: "bad role marker", body: "validator:\n  role_marker: \"(\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.body)

			container, err := BuildContainer(context.Background(), Options{Root: root})
			require.NoError(t, err)
			assert.Error(t, container.ConfigError)
			assert.Equal(t, SourceDefaults, container.ConfigSource)
			assert.False(t, container.ProtectedGate.Evaluate(".git/HEAD").Allowed())
			assert.False(t, container.MarkdownGate.Evaluate("notes.md").Allowed())
		})
	}
}

func TestBuildContainerExplicitConfigPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("markdown:\n  blocked: []\n"), 0o600))

	container, err := BuildContainer(context.Background(), Options{Root: root, ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, path, container.ConfigSource)
	assert.Empty(t, container.Config.Markdown.Blocked)
	assert.False(t, container.MarkdownGate.Evaluate("scratch.md").Allowed(), "root-level fallback still applies")
	assert.Equal(t, security.RuleRootLevel, container.MarkdownGate.Evaluate("src/notes.md").MatchedRule)
	assert.True(t, container.MarkdownGate.Evaluate("src/pkg/notes.md").Allowed())
}

func TestResolveRootExplicit(t *testing.T) {
	dir := t.TempDir()
	root, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
