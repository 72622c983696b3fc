package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default gate and validator configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// PermissionsSchemaJSON describes the permissions block of a settings file.
//
//go:embed defaults/permissions.schema.json
var PermissionsSchemaJSON []byte

// HooksSchemaJSON describes the hooks block of a settings file.
//
//go:embed defaults/hooks.schema.json
var HooksSchemaJSON []byte
