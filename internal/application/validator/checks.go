package validator

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// CheckStructure verifies every required file exists under root.
func (s *Service) CheckStructure(root string) domain.CheckResult {
	return s.runNamed(CheckStructure, root)
}

// CheckJSONConfigs verifies the JSON configuration files parse.
func (s *Service) CheckJSONConfigs(root string) domain.CheckResult {
	return s.runNamed(CheckJSONConfigs, root)
}

// CheckRuleFiles verifies the frontmatter of every hookify rule file.
func (s *Service) CheckRuleFiles(root string) domain.CheckResult {
	return s.runNamed(CheckRuleFiles, root)
}

// CheckWorkflow verifies the workflow documents mention every key role.
func (s *Service) CheckWorkflow(root string) domain.CheckResult {
	return s.runNamed(CheckWorkflow, root)
}

// CheckPermissions reports missing baseline permission entries.
func (s *Service) CheckPermissions(root string) domain.CheckResult {
	return s.runNamed(CheckPermissions, root)
}

// CheckCommands reports command files without frontmatter or a role description.
func (s *Service) CheckCommands(root string) domain.CheckResult {
	return s.runNamed(CheckCommands, root)
}

// CheckHooks reports hook registrations for unknown events or with a bad shape.
func (s *Service) CheckHooks(root string) domain.CheckResult {
	return s.runNamed(CheckHooks, root)
}

func (s *Service) runNamed(name, root string) domain.CheckResult {
	result, err := s.CheckByName(name, root)
	if err != nil {
		result = domain.NewCheckResult(name, false)
		result.Fail("%v", err)
	}
	return result
}

func (s *Service) checkStructure(root string, result *domain.CheckResult) {
	for _, rel := range s.settings.RequiredFiles {
		if _, err := os.Stat(resolve(root, rel)); err != nil {
			result.Fail("missing: %s", rel)
			continue
		}
		result.Pass("present: %s", rel)
	}
}

func (s *Service) checkJSONConfigs(root string, result *domain.CheckResult) {
	for _, rel := range s.settings.JSONFiles {
		data, err := os.ReadFile(resolve(root, rel))
		if errors.Is(err, fs.ErrNotExist) {
			result.Warn("skipped: %s (file not found)", rel)
			continue
		}
		if err != nil {
			result.Fail("unreadable: %s - %v", rel, err)
			continue
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			result.Fail("invalid JSON: %s - %v", rel, err)
			continue
		}
		result.Pass("valid JSON: %s", rel)
	}
}

func (s *Service) checkRuleFiles(root string, result *domain.CheckResult) {
	files, err := globUnder(root, s.settings.RuleGlob)
	if err != nil {
		result.Fail("bad rule glob %s: %v", s.settings.RuleGlob, err)
		return
	}
	if len(files) == 0 {
		result.Warn("no hookify rule files found (%s)", s.settings.RuleGlob)
		return
	}
	sort.Strings(files)

	for _, file := range files {
		result.Info("checking: %s", filepath.Base(file))
		data, err := os.ReadFile(file)
		if err != nil {
			result.Fail("  read failed: %v", err)
			continue
		}
		fields, err := parseFrontmatter(string(data))
		if errors.Is(err, ErrNoFrontmatter) {
			result.Fail("  invalid frontmatter format")
			continue
		}
		if err != nil {
			result.Fail("  parse failed: %v", err)
			continue
		}

		for _, key := range s.settings.RuleRequiredKeys {
			value, ok := fields[key]
			if !ok {
				result.Fail("  missing field: %s", key)
				continue
			}
			result.Pass("  %s: %v", key, value)
		}

		if raw, ok := fields["pattern"]; ok {
			pattern, isString := raw.(string)
			if !isString {
				result.Fail("  pattern: expected a string, got %T", raw)
				continue
			}
			if _, err := regexp.Compile(pattern); err != nil {
				result.Fail("  pattern: invalid regular expression - %v", err)
				continue
			}
			result.Pass("  pattern: valid regular expression")
		}
	}
}

func (s *Service) checkWorkflow(root string, result *domain.CheckResult) {
	for _, rel := range s.settings.WorkflowFiles {
		data, err := os.ReadFile(resolve(root, rel))
		if errors.Is(err, fs.ErrNotExist) {
			result.Warn("skipped: %s (file not found)", rel)
			continue
		}
		if err != nil {
			result.Fail("unreadable: %s - %v", rel, err)
			continue
		}

		content := string(data)
		var missing []string
		for _, role := range s.settings.Roles {
			if !strings.Contains(content, role) {
				missing = append(missing, role)
			}
		}
		if len(missing) > 0 {
			result.Fail("workflow is missing roles [%s]: %s", strings.Join(missing, ", "), rel)
			continue
		}
		result.Pass("workflow mentions every key role: %s", rel)
	}
}

func (s *Service) checkPermissions(root string, result *domain.CheckResult) {
	rel := s.settings.PermissionsFile
	doc, ok := loadJSONObject(resolve(root, rel), rel, result)
	if !ok {
		return
	}
	if violation := schemaViolation(s.permissions, doc); violation != "" {
		result.Warn("permissions block does not match the expected shape: %s", violation)
	}

	allow := stringSet(doc, "permissions", "allow")
	deny := stringSet(doc, "permissions", "deny")
	for _, entry := range s.settings.RequiredAllow {
		if allow[entry] {
			result.Pass("allowed: %s", entry)
		} else {
			result.Warn("allow not configured: %s", entry)
		}
	}
	for _, entry := range s.settings.RequiredDeny {
		if deny[entry] {
			result.Pass("denied: %s", entry)
		} else {
			result.Warn("deny not configured: %s", entry)
		}
	}
}

func (s *Service) checkCommands(root string, result *domain.CheckResult) {
	dir := resolve(root, s.settings.CommandsDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		result.Warn("commands directory not found: %s", s.settings.CommandsDir)
		return
	}
	files, err := globUnder(dir, "*"+domain.MarkdownExtension)
	if err != nil {
		result.Warn("cannot list %s: %v", s.settings.CommandsDir, err)
		return
	}
	if len(files) == 0 {
		result.Info("no command files in %s", s.settings.CommandsDir)
		return
	}
	sort.Strings(files)

	for _, file := range files {
		name := filepath.Base(file)
		data, err := os.ReadFile(file)
		if err != nil {
			result.Warn("%s - unreadable: %v", name, err)
			continue
		}
		content := string(data)
		frontmatter := hasFrontmatter(content)
		role := s.roleMarker.MatchString(content)
		switch {
		case frontmatter && role:
			result.Pass("%s", name)
		case frontmatter:
			result.Warn("%s - missing role description", name)
		default:
			result.Warn("%s - missing frontmatter", name)
		}
	}
}

func (s *Service) checkHooks(root string, result *domain.CheckResult) {
	rel := s.settings.SettingsFile
	path := resolve(root, rel)
	doc, ok := loadJSONObject(path, rel, result)
	if !ok {
		return
	}
	if _, registered := doc["hooks"]; !registered {
		result.Info("no hooks registered in %s", rel)
		return
	}
	if violation := schemaViolation(s.hooks, doc); violation != "" {
		result.Warn("hooks block does not match the expected shape: %s", violation)
	}

	hooks, isObject := doc["hooks"].(map[string]any)
	if !isObject {
		result.Warn("hooks in %s is not an object", rel)
		return
	}

	known := make(map[string]bool)
	for _, name := range domain.HookEventNames() {
		known[name] = true
	}
	events := make([]string, 0, len(hooks))
	for event := range hooks {
		events = append(events, event)
	}
	sort.Strings(events)

	for _, event := range events {
		if !known[event] {
			result.Warn("unknown hook event: %s", event)
			continue
		}
		groups, _ := hooks[event].([]any)
		commands := 0
		for _, group := range groups {
			fields, _ := group.(map[string]any)
			entries, _ := fields["hooks"].([]any)
			commands += len(entries)
		}
		result.Pass("%s: %d group(s), %d command(s)", event, len(groups), commands)
	}
}

// loadJSONObject reads an optional JSON object for an advisory check.
// Problems become warnings and ok is false.
func loadJSONObject(path, rel string, result *domain.CheckResult) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		result.Warn("skipped: %s (file not found)", rel)
		return nil, false
	}
	if err != nil {
		result.Warn("unreadable: %s - %v", rel, err)
		return nil, false
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Warn("invalid JSON: %s - %v", rel, err)
		return nil, false
	}
	object, ok := doc.(map[string]any)
	if !ok {
		result.Warn("%s: %v", rel, ErrNotJSONObject)
		return nil, false
	}
	return object, true
}

// stringSet collects the string entries of the array found at keys.
func stringSet(doc map[string]any, keys ...string) map[string]bool {
	var node any = doc
	for _, key := range keys {
		object, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = object[key]
	}
	items, _ := node.([]any)
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if value, ok := item.(string); ok {
			set[value] = true
		}
	}
	return set
}

// globUnder matches a slash-separated pattern relative to base, so glob
// metacharacters in base itself are taken literally.
func globUnder(base, pattern string) ([]string, error) {
	matches, err := fs.Glob(os.DirFS(base), filepath.ToSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = resolve(base, match)
	}
	return matches, nil
}

func resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
