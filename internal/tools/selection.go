package tools

import "fmt"

// Selection records which tools the user wants. It is immutable once built:
// the constructors copy their input and no setters are exposed.
type Selection struct {
	wanted map[ToolName]bool
}

// NewSelection builds a Selection from a wanted-flag map. Every key must be a
// supported tool. Tools missing from the map count as unwanted.
func NewSelection(wanted map[ToolName]bool) (Selection, error) {
	m := make(map[ToolName]bool, len(wanted))
	for name, want := range wanted {
		if _, ok := ParseToolName(string(name)); !ok {
			return Selection{}, fmt.Errorf("unknown tool %q in selection", name)
		}
		m[name] = want
	}
	return Selection{wanted: m}, nil
}

// All returns a Selection with every supported tool set to want.
func All(want bool) Selection {
	m := make(map[ToolName]bool)
	for _, t := range DefaultOrder() {
		m[t] = want
	}
	return Selection{wanted: m}
}

// Only returns a Selection where exactly the given tools are wanted.
func Only(names ...ToolName) (Selection, error) {
	m := make(map[ToolName]bool)
	for _, t := range DefaultOrder() {
		m[t] = false
	}
	for _, n := range names {
		m[n] = true
	}
	return NewSelection(m)
}

// Wants reports whether the named tool was selected.
func (s Selection) Wants(name ToolName) bool {
	return s.wanted[name]
}

// Wanted returns the selected tools in default order.
func (s Selection) Wanted() []ToolName {
	var out []ToolName
	for _, t := range DefaultOrder() {
		if s.wanted[t] {
			out = append(out, t)
		}
	}
	return out
}
