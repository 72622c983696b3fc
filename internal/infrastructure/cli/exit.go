package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/cli/commands"
)

// HandleError reports err on w unless it is a silent exit and returns the
// process exit code.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return domain.ExitAllow
	}
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Silent() {
			fmt.Fprintln(w, "error:", exitErr)
		}
		return exitErr.Code
	}
	fmt.Fprintln(w, "error:", err)
	return domain.ExitFailure
}
