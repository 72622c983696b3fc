package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiaobei930/claude-code-best-practices/internal/app"
	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/cli/helpers"
)

const flagColor = "color"

// NewValidateCommand creates the validate command.
// It exits 1 when any hard check fails; advisory checks only print warnings.
func NewValidateCommand(container *app.Container, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the template for missing files and malformed configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Validator == nil {
				return errors.New(ErrValidatorUnavailable)
			}
			out := cmd.OutOrStdout()
			color, err := helpers.UseColor(v.GetString(flagColor), out)
			if err != nil {
				return err
			}

			report := container.Validator.Run(cmd.Context(), container.Root)
			helpers.NewReportRenderer(out, color).Render(report)
			if !report.Passed() {
				return exitWith(domain.ExitFailure)
			}
			return nil
		},
	}

	cmd.Flags().String(flagColor, helpers.ColorAuto, "Colorize output: auto, always or never")
	_ = v.BindPFlag(flagColor, cmd.Flags().Lookup(flagColor))

	return cmd
}
