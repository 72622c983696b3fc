package app

import (
	"context"
	"fmt"
	"path/filepath"

	appconfig "github.com/xiaobei930/claude-code-best-practices/internal/application/config"
	"github.com/xiaobei930/claude-code-best-practices/internal/application/doctor"
	"github.com/xiaobei930/claude-code-best-practices/internal/application/validator"
	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/config"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/security"
	"github.com/xiaobei930/claude-code-best-practices/internal/pkg/filesystem"
	"github.com/xiaobei930/claude-code-best-practices/internal/pkg/logger"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// SourceDefaults is reported as the config source when no file was used.
const SourceDefaults = "embedded defaults"

// Options are the resolved global flags.
type Options struct {
	Root       string
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Root           string
	Config         domain.Config
	ConfigSource   string
	ConfigError    error
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	MarkdownGate   *security.MarkdownGate
	ProtectedGate  *security.ProtectedGate
	Validator      *validator.Service
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph.
//
// A config file that cannot be read, parsed or validated never stops the
// build: the embedded defaults take over and ConfigError records why.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log := logger.New(opts.Verbose)

	root, err := ResolveRoot(opts.Root)
	if err != nil {
		log.Warn("cannot locate project root, using working directory", map[string]interface{}{"error": err.Error()})
		root = "."
	}

	cfgLoader := config.NewFileLoader(opts.ConfigPath, root)
	cfg, source, cfgErr := loadConfig(ctx, cfgLoader)
	if cfgErr != nil {
		log.Warn("configuration rejected, using defaults", map[string]interface{}{
			"path":  cfgLoader.Path(),
			"error": cfgErr.Error(),
		})
		defaults, err := config.DefaultConfig()
		if err != nil {
			return nil, err
		}
		cfg, source = defaults, SourceDefaults
	}

	markdownGate, err := security.NewMarkdownGate(cfg.Markdown, log)
	if err != nil {
		return nil, fmt.Errorf("markdown rules: %w", err)
	}
	protectedGate, err := security.NewProtectedGate(cfg.Protected, log)
	if err != nil {
		return nil, fmt.Errorf("protected rules: %w", err)
	}
	validatorService, err := validator.NewService(cfg.Validator, log)
	if err != nil {
		return nil, err
	}

	doctorService := &doctor.Service{
		Root:          root,
		ConfigSource:  source,
		ConfigError:   cfgErr,
		SettingsFile:  cfg.Validator.SettingsFile,
		MarkdownGate:  markdownGate,
		ProtectedGate: protectedGate,
	}

	log.Debug("container ready", map[string]interface{}{"root": root, "config": source})

	return &Container{
		Root:           root,
		Config:         cfg,
		ConfigSource:   source,
		ConfigError:    cfgErr,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		MarkdownGate:   markdownGate,
		ProtectedGate:  protectedGate,
		Validator:      validatorService,
		DoctorService:  doctorService,
	}, nil
}

// ResolveRoot returns the explicit root when given, otherwise the directory
// domain.RootLevelsAboveExecutable levels above the running binary.
func ResolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(filesystem.ExpandHome(explicit))
	}
	return filesystem.ExecutableAncestor(domain.RootLevelsAboveExecutable)
}

func loadConfig(ctx context.Context, loader *config.FileLoader) (domain.Config, string, error) {
	cfg, err := loader.Load(ctx)
	if err != nil {
		return domain.Config{}, "", err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, "", fmt.Errorf("invalid config %s: %w", loader.Path(), err)
	}
	if !loader.Exists() {
		return cfg, SourceDefaults, nil
	}
	return cfg, loader.Path(), nil
}
