package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xiaobei930/claude-code-best-practices/internal/app"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/config"
)

// NewInitCommand creates the init command, which writes the default rules
// to <root>/.claude/tplguard.yaml so they can be edited.
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default gate and validator configuration",
		Long: `Write the default configuration to <root>/.claude/tplguard.yaml.

The file lists every pattern table the gates use and the files the validator
expects. Lists left out of the file keep their defaults, so it can be trimmed
down to the entries you change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config, keeping a backup")

	return cmd
}

// runInit writes the defaults, backing up any file it replaces
func runInit(out io.Writer, container *app.Container, force bool) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}

	if loader.Exists() {
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", loader.Path())
		}
		backup, err := loader.Backup()
		if err != nil {
			return fmt.Errorf("failed to create configuration backup: %w", err)
		}
		fmt.Fprintf(out, "Existing config backed up to: %s\n", backup)
	}

	if err := loader.WriteDefaults(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Fprintf(out, "Configuration initialized: %s\n", loader.Path())
	fmt.Fprintln(out, "Check it with: tplguard rules")
	return nil
}

func configLoader(container *app.Container) (*config.FileLoader, error) {
	if container.ConfigLoader == nil {
		return nil, errors.New(ErrConfigLoaderUnavailable)
	}
	return container.ConfigLoader, nil
}
