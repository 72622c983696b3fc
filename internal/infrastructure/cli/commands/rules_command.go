package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xiaobei930/claude-code-best-practices/internal/app"
	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// NewRulesCommand creates the rules command, which prints the effective gate rules.
func NewRulesCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the effective gate rules and where they came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRules(cmd.OutOrStdout(), container)
		},
	}
}

type effectiveRules struct {
	Markdown  domain.MarkdownRules  `yaml:"markdown"`
	Protected domain.ProtectedRules `yaml:"protected"`
}

// showRules writes the config source followed by the rule tables as YAML
func showRules(out io.Writer, container *app.Container) error {
	fmt.Fprintf(out, "# root: %s\n", container.Root)
	fmt.Fprintf(out, "# source: %s\n", container.ConfigSource)
	if container.ConfigError != nil {
		fmt.Fprintf(out, "# ignored config: %v\n", container.ConfigError)
	}

	data, err := yaml.Marshal(effectiveRules{
		Markdown:  container.Config.Markdown,
		Protected: container.Config.Protected,
	})
	if err != nil {
		return fmt.Errorf("failed to render rules: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}
