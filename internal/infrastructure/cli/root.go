package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiaobei930/claude-code-best-practices/internal/app"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/cli/commands"
)

// EnvPrefix namespaces the environment variables bound to global flags.
const EnvPrefix = "TPLGUARD"

// Global flag names, also used as viper keys.
const (
	flagRoot   = "root"
	flagConfig = "config"
	flagDebug  = "debug"
)

// NewRootCmd wires the cobra root command.
//
// The container is built once flags and TPLGUARD_* variables are resolved,
// just before the selected subcommand runs.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	container := &app.Container{}

	root := &cobra.Command{
		Use:   "tplguard",
		Short: "Guard hooks and validator for the project template",
		Long: "tplguard blocks stray markdown files and edits to protected paths when run as a\n" +
			"PreToolUse hook, and checks the template for missing or malformed files.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				Root:       v.GetString(flagRoot),
				ConfigPath: v.GetString(flagConfig),
				Verbose:    v.GetBool(flagDebug),
			})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if container.Logger != nil {
				_ = container.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String(flagRoot, "", "Project root (default: three levels above the executable)")
	flags.String(flagConfig, "", "Config file (default: <root>/.claude/tplguard.yaml)")
	flags.Bool(flagDebug, false, "Enable debug logging on stderr")
	_ = v.BindPFlag(flagRoot, flags.Lookup(flagRoot))
	_ = v.BindPFlag(flagConfig, flags.Lookup(flagConfig))
	_ = v.BindPFlag(flagDebug, flags.Lookup(flagDebug))

	root.AddCommand(
		commands.NewHookCommand(container),
		commands.NewValidateCommand(container, v),
		commands.NewRulesCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewInitCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}
