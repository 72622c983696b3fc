package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAncestorDir(t *testing.T) {
	exe := filepath.Join("project", ".claude", "bin", "tplguard")
	assert.Equal(t, "project", AncestorDir(exe, 3))
	assert.Equal(t, filepath.Join("project", ".claude", "bin"), AncestorDir(exe, 1))
	assert.Equal(t, exe, AncestorDir(exe, 0))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, filepath.Join(UserHomeDir(), "cfg.yaml"), ExpandHome("~/cfg.yaml"))
	assert.Equal(t, "relative/cfg.yaml", ExpandHome("relative/cfg.yaml"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "absent.txt")))
}
