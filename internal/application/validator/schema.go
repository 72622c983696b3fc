package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/xiaobei930/claude-code-best-practices/assets"
)

func compileSchemas() (permissions, hooks *jsonschema.Schema, err error) {
	if permissions, err = compileSchema("permissions.schema.json", assets.PermissionsSchemaJSON); err != nil {
		return nil, nil, err
	}
	if hooks, err = compileSchema("hooks.schema.json", assets.HooksSchemaJSON); err != nil {
		return nil, nil, err
	}
	return permissions, hooks, nil
}

func compileSchema(name string, raw []byte) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCompileSchema, name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCompileSchema, name, err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCompileSchema, name, err)
	}
	return sch, nil
}

// schemaViolation returns a one-line description of why doc does not match
// sch, or "" when it does.
func schemaViolation(sch *jsonschema.Schema, doc any) string {
	if err := sch.Validate(doc); err != nil {
		lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "-"))
		}
		return strings.Join(lines, "; ")
	}
	return ""
}
