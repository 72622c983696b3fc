package domain

// Markdown gate constants
const (
	// MarkdownExtension is the only extension the markdown gate has an opinion on.
	MarkdownExtension = ".md"
	// MaxRootSeparators is the deepest a path may be, counted in "/" separators,
	// before an unmatched markdown file stops being treated as a stray root file.
	MaxRootSeparators = 1
)

// Project layout constants
const (
	// ConfigDirName is the template's configuration directory.
	ConfigDirName = ".claude"
	// ConfigFileName is the gate and validator configuration file inside ConfigDirName.
	ConfigFileName = "tplguard.yaml"
	// RootLevelsAboveExecutable is how far the project root sits above the binary.
	RootLevelsAboveExecutable = 3
)

// Frontmatter delimiter used by rule and command files.
const FrontmatterDelimiter = "---"

// File permissions for files tplguard writes.
const (
	DirectoryPermissions = 0o755
	FilePermissions      = 0o644
)

// Hook subcommand names as registered in settings files.
const (
	HookBlockMarkdown = "block-md"
	HookProtectFiles  = "protect-files"
)
