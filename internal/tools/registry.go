package tools

import (
	"fmt"
	"strings"
)

// ToolName identifies one selectable development tool.
type ToolName string

const (
	TypeScript   ToolName = "typescript"
	Commitizen   ToolName = "commitizen"
	Husky        ToolName = "husky"
	LintStaged   ToolName = "lint-staged"
	EditorConfig ToolName = "editorconfig"
	Prettier     ToolName = "prettier"
	ESLint       ToolName = "eslint"
)

// DefaultOrder returns every supported tool in the order jobs run and rows
// are shown. Callers get a fresh slice and may reorder it freely.
func DefaultOrder() []ToolName {
	return []ToolName{TypeScript, Commitizen, Husky, LintStaged, EditorConfig, Prettier, ESLint}
}

// ParseToolName converts a string to a ToolName, returning false if invalid.
func ParseToolName(s string) (ToolName, bool) {
	for _, t := range DefaultOrder() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ParseList parses a comma-separated list of tool names. Blank entries are
// ignored; an unknown name is an error.
func ParseList(s string) ([]ToolName, error) {
	var out []ToolName
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, ok := ParseToolName(part)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q: supported tools are %s", part, joinNames(DefaultOrder()))
		}
		out = append(out, name)
	}
	return out, nil
}

func joinNames(names []ToolName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
