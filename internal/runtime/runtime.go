package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes a single external command to completion.
type Runner interface {
	// Run executes cmd and returns its captured output. A non-zero exit is
	// reported as an *ExitError alongside the output.
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command describes one process invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command  Command
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
