package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xiaobei930/claude-code-best-practices/assets"
	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/pkg/filesystem"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// FileLoader loads YAML configuration from <root>/.claude/tplguard.yaml
// (overridable via --config or TPLGUARD_CONFIG).
type FileLoader struct {
	overridePath string
	root         string
}

// NewFileLoader builds a new loader. An empty path selects the project default.
func NewFileLoader(path, root string) *FileLoader {
	return &FileLoader{overridePath: path, root: root}
}

// Load implements ports.ConfigProvider. A missing file yields the embedded
// defaults; lists left out of the file are taken from the defaults as well.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	defaults, err := DefaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", l.Path(), err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", l.Path(), err)
	}
	return hydrateDefaults(cfg, defaults), nil
}

// Path returns the config file location the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	return filepath.Join(l.root, domain.ConfigDirName, domain.ConfigFileName)
}

// Exists reports whether the config file is present on disk.
func (l *FileLoader) Exists() bool {
	return filesystem.Exists(l.Path())
}

// WriteDefaults writes the embedded default configuration, comments included,
// to Path.
func (l *FileLoader) WriteDefaults() error {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.FilePermissions)
}

// Backup copies the current config file to a timestamped backup.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.FilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

// DefaultConfig decodes the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func hydrateDefaults(cfg, defaults domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = defaults.ConfigFormatVersion
	}

	orList(&cfg.Markdown.Allowed, defaults.Markdown.Allowed)
	orList(&cfg.Markdown.Blocked, defaults.Markdown.Blocked)
	orList(&cfg.Protected.Patterns, defaults.Protected.Patterns)
	orList(&cfg.Protected.Warn, defaults.Protected.Warn)

	v, d := &cfg.Validator, defaults.Validator
	orList(&v.RequiredFiles, d.RequiredFiles)
	orList(&v.JSONFiles, d.JSONFiles)
	orList(&v.RuleRequiredKeys, d.RuleRequiredKeys)
	orList(&v.WorkflowFiles, d.WorkflowFiles)
	orList(&v.Roles, d.Roles)
	orList(&v.RequiredAllow, d.RequiredAllow)
	orList(&v.RequiredDeny, d.RequiredDeny)
	orString(&v.RuleGlob, d.RuleGlob)
	orString(&v.PermissionsFile, d.PermissionsFile)
	orString(&v.CommandsDir, d.CommandsDir)
	orString(&v.RoleMarker, d.RoleMarker)
	orString(&v.SettingsFile, d.SettingsFile)
	return cfg
}

// orList fills a list the file did not mention. An explicit empty list is kept.
func orList(target *[]string, fallback []string) {
	if *target == nil {
		*target = append([]string(nil), fallback...)
	}
}

func orString(target *string, fallback string) {
	if *target == "" {
		*target = fallback
	}
}

func expandPath(path string) string {
	path = filesystem.ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
