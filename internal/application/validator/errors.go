package validator

import "errors"

var (
	ErrRoleMarker    = errors.New("invalid role marker")
	ErrCompileSchema = errors.New("compile embedded schema")
	ErrUnknownCheck  = errors.New("unknown check")
	ErrNoFrontmatter = errors.New("no frontmatter block")
	ErrNotJSONObject = errors.New("document is not a JSON object")
)
