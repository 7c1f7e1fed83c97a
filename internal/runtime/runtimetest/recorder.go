// Package runtimetest provides a scripted runtime.Runner for tests.
package runtimetest

import (
	"context"
	"strings"
	"sync"

	"github.com/projkit-labs/projkit/internal/runtime"
)

// Response is the scripted result for commands matching a prefix.
type Response struct {
	Output runtime.Output
	Err    error
}

// Recorder records every command it is asked to run and answers from a
// table of responses keyed by command-line prefix. Commands without a
// matching entry succeed with empty output.
type Recorder struct {
	mu        sync.Mutex
	responses map[string]Response
	commands  []runtime.Command
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{responses: make(map[string]Response)}
}

// On scripts the response for commands whose rendered form starts with prefix.
func (r *Recorder) On(prefix string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[prefix] = resp
	return r
}

// Run implements runtime.Runner.
func (r *Recorder) Run(_ context.Context, c runtime.Command) (*runtime.Output, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, c)

	line := c.String()
	best := ""
	for prefix := range r.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return &runtime.Output{}, nil
	}
	resp := r.responses[best]
	out := resp.Output
	return &out, resp.Err
}

// Commands returns the rendered command lines run so far, in order.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, len(r.commands))
	for i, c := range r.commands {
		lines[i] = c.String()
	}
	return lines
}

// Ran reports whether a command starting with prefix was run.
func (r *Recorder) Ran(prefix string) bool {
	for _, line := range r.Commands() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
