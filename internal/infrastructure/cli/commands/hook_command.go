package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiaobei930/claude-code-best-practices/internal/app"
	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/hookinput"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// NewHookCommand creates the hook command with one subcommand per gate.
//
// Hooks read the host's JSON payload on stdin and answer with an exit code:
// 0 lets the write proceed, 2 blocks it. Anything they cannot decide on is
// let through silently.
func NewHookCommand(container *app.Container) *cobra.Command {
	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Run a PreToolUse gate against the payload on stdin",
	}

	hookCmd.AddCommand(
		newBlockMarkdownCommand(container),
		newProtectFilesCommand(container),
	)

	return hookCmd
}

// newBlockMarkdownCommand keeps scratch markdown out of the project root
func newBlockMarkdownCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   domain.HookBlockMarkdown,
		Short: "Block stray markdown files outside documentation directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.MarkdownGate == nil {
				return errors.New(ErrGateUnavailable)
			}
			return runGate(cmd, container.MarkdownGate, PrefixBlockMD, func(w io.Writer, inv domain.ToolInvocation, decision domain.Decision) {
				fmt.Fprintf(w, "%s blocked: %s: %s\n", PrefixBlockMD, decision.Reason, inv.FilePath)
				fmt.Fprintf(w, "%s hint: %s %s\n", PrefixBlockMD, MsgDocsHint, strings.Join(container.MarkdownGate.ApprovedLocations(), ", "))
			})
		},
	}
}

// newProtectFilesCommand blocks edits to protected paths
func newProtectFilesCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   domain.HookProtectFiles,
		Short: "Block edits to protected files and directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ProtectedGate == nil {
				return errors.New(ErrGateUnavailable)
			}
			return runGate(cmd, container.ProtectedGate, PrefixProtectFiles, func(w io.Writer, inv domain.ToolInvocation, decision domain.Decision) {
				fmt.Fprintf(w, "%s blocked: %s\n", PrefixProtectFiles, decision.Reason)
				fmt.Fprintf(w, "file: %s\n", inv.FilePath)
				fmt.Fprintln(w, MsgProtectedHint)
			})
		},
	}
}

type denyReporter func(w io.Writer, inv domain.ToolInvocation, decision domain.Decision)

// runGate decodes stdin, evaluates the path and maps the decision onto the exit contract.
func runGate(cmd *cobra.Command, gate ports.PathGate, prefix string, report denyReporter) error {
	inv, ok := hookinput.Read(cmd.InOrStdin())
	if !ok {
		return nil
	}

	decision := gate.Evaluate(inv.FilePath)
	stderr := cmd.ErrOrStderr()
	for _, warning := range decision.Warnings {
		fmt.Fprintf(stderr, "%s warning: %s\n", prefix, warning)
	}
	if decision.Allowed() {
		return nil
	}

	report(stderr, inv, decision)
	return exitWith(decision.ExitCode())
}
