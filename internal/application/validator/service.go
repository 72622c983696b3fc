// Package validator checks a project template for missing files, malformed
// configuration and inconsistent documentation.
//
// Every check is independent: it reads the files it needs, records its own
// lines and can fail without stopping the checks after it. Only hard checks
// count towards the aggregate result.
package validator

import (
	"context"
	"fmt"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
	"github.com/xiaobei930/claude-code-best-practices/internal/ports"
)

// Check names as printed in the report.
const (
	CheckStructure   = "Structure"
	CheckJSONConfigs = "JSON configs"
	CheckRuleFiles   = "Hookify rules"
	CheckWorkflow    = "Workflow consistency"
	CheckPermissions = "Permissions"
	CheckCommands    = "Command files"
	CheckHooks       = "Hook registration"
)

// Check is one named step of a validation run.
type Check struct {
	Name     string
	Advisory bool
	run      func(root string, result *domain.CheckResult)
}

// Service runs template checks.
type Service struct {
	settings    domain.ValidatorSettings
	logger      ports.Logger
	roleMarker  *regexp.Regexp
	permissions *jsonschema.Schema
	hooks       *jsonschema.Schema
}

// NewService compiles the settings' regular expression and the embedded schemas.
func NewService(settings domain.ValidatorSettings, log ports.Logger) (*Service, error) {
	marker, err := regexp.Compile(settings.RoleMarker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoleMarker, err)
	}
	permissions, hooks, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	return &Service{
		settings:    settings,
		logger:      log,
		roleMarker:  marker,
		permissions: permissions,
		hooks:       hooks,
	}, nil
}

// Checks returns the checks in report order.
func (s *Service) Checks() []Check {
	return []Check{
		{Name: CheckStructure, run: s.checkStructure},
		{Name: CheckJSONConfigs, run: s.checkJSONConfigs},
		{Name: CheckRuleFiles, run: s.checkRuleFiles},
		{Name: CheckWorkflow, run: s.checkWorkflow},
		{Name: CheckPermissions, Advisory: true, run: s.checkPermissions},
		{Name: CheckCommands, Advisory: true, run: s.checkCommands},
		{Name: CheckHooks, Advisory: true, run: s.checkHooks},
	}
}

// Run executes every check against root.
func (s *Service) Run(ctx context.Context, root string) domain.ValidationReport {
	report := domain.ValidationReport{Root: root}
	for _, check := range s.Checks() {
		if err := ctx.Err(); err != nil {
			result := domain.NewCheckResult(check.Name, check.Advisory)
			result.Fail("not run: %v", err)
			report.Results = append(report.Results, result)
			continue
		}
		report.Results = append(report.Results, s.RunCheck(check, root))
	}
	return report
}

// RunCheck executes one check. A panic inside the check fails that check only.
func (s *Service) RunCheck(check Check, root string) (result domain.CheckResult) {
	result = domain.NewCheckResult(check.Name, check.Advisory)
	defer func() {
		if r := recover(); r != nil {
			result.Fail("check aborted: %v", r)
			s.log("check panicked", map[string]interface{}{"check": check.Name, "panic": fmt.Sprint(r)})
		}
	}()
	check.run(root, &result)
	s.log("check finished", map[string]interface{}{"check": check.Name, "passed": result.Passed})
	return result
}

// CheckByName runs a single check, for callers that want one result.
func (s *Service) CheckByName(name, root string) (domain.CheckResult, error) {
	for _, check := range s.Checks() {
		if check.Name == name {
			return s.RunCheck(check, root), nil
		}
	}
	return domain.CheckResult{}, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
}

func (s *Service) log(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

var _ ports.TemplateValidator = (*Service)(nil)
