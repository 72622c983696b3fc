package domain

// HookInput mirrors the JSON payload a PreToolUse hook receives on stdin.
// Only the fields the gates read are declared.
type HookInput struct {
	SessionID     string    `json:"session_id"`
	HookEventName string    `json:"hook_event_name"`
	ToolName      string    `json:"tool_name"`
	ToolInput     ToolInput `json:"tool_input"`
}

// ToolInput is the tool-specific argument object.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// ToolInvocation is the part of a hook payload a gate decides on.
type ToolInvocation struct {
	ToolName  string
	HookEvent string
	FilePath  string
}

// HookEntry is a single registered hook command.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// HookGroup pairs a tool matcher with the hooks it triggers.
type HookGroup struct {
	Matcher string      `json:"matcher,omitempty"`
	Hooks   []HookEntry `json:"hooks"`
}

// HookEventNames lists the lifecycle events a settings file may register hooks for.
func HookEventNames() []string {
	return []string{
		"PreToolUse", "PostToolUse",
		"Notification", "UserPromptSubmit",
		"Stop", "SubagentStop",
		"SessionStart", "SessionEnd",
		"PreCompact", "PostCompact",
		"TaskCompleted", "ConfigChange",
		"WorktreeCreate", "WorktreeRemove",
	}
}
