package domain

// Config mirrors .claude/tplguard.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Markdown            MarkdownRules     `yaml:"markdown"`
	Protected           ProtectedRules    `yaml:"protected"`
	Validator           ValidatorSettings `yaml:"validator"`
}

// MarkdownRules configures the markdown gate.
type MarkdownRules struct {
	// Allowed holds directory markers ("docs/") and standard file names ("README.md").
	Allowed []string `yaml:"allowed"`
	// Blocked holds scratch file names denied outside allowed locations.
	Blocked []string `yaml:"blocked"`
}

// ProtectedRules configures the protected-file gate.
type ProtectedRules struct {
	Patterns []string `yaml:"patterns"`
	Warn     []string `yaml:"warn"`
}

// ValidatorSettings lists the files and tokens the template validator expects.
type ValidatorSettings struct {
	RequiredFiles    []string `yaml:"required_files"`
	JSONFiles        []string `yaml:"json_files"`
	RuleGlob         string   `yaml:"rule_glob"`
	RuleRequiredKeys []string `yaml:"rule_required_keys"`
	WorkflowFiles    []string `yaml:"workflow_files"`
	Roles            []string `yaml:"roles"`
	PermissionsFile  string   `yaml:"permissions_file"`
	RequiredAllow    []string `yaml:"required_allow"`
	RequiredDeny     []string `yaml:"required_deny"`
	CommandsDir      string   `yaml:"commands_dir"`
	RoleMarker       string   `yaml:"role_marker"`
	SettingsFile     string   `yaml:"settings_file"`
}
