package pkgmanager

import "fmt"

// Manager identifies a supported package manager.
type Manager string

const (
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	NPM  Manager = "npm"
)

// All returns the supported managers in prompt order.
func All() []Manager {
	return []Manager{PNPM, Yarn, NPM}
}

// ParseManager converts a string to a Manager.
func ParseManager(s string) (Manager, error) {
	for _, m := range All() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown package manager: %s", s)
}
