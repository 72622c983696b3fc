// Package hookinput decodes the JSON payload a hook host writes to stdin.
//
// Decoding never fails loudly: a payload that is empty, not JSON, shaped
// differently, or missing tool_input.file_path yields ok == false and the
// caller lets the write through.
package hookinput

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// Read decodes r into a tool invocation. ok is false when there is nothing to decide on.
func Read(r io.Reader) (inv domain.ToolInvocation, ok bool) {
	if r == nil {
		return domain.ToolInvocation{}, false
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.ToolInvocation{}, false
	}
	return Parse(raw)
}

// Parse decodes an in-memory payload with the same fail-open rules as Read.
func Parse(raw []byte) (domain.ToolInvocation, bool) {
	var input domain.HookInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return domain.ToolInvocation{}, false
	}
	if strings.TrimSpace(input.ToolInput.FilePath) == "" {
		return domain.ToolInvocation{}, false
	}
	return domain.ToolInvocation{
		ToolName:  input.ToolName,
		HookEvent: input.HookEventName,
		FilePath:  input.ToolInput.FilePath,
	}, true
}
