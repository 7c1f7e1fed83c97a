package jobs

import (
	"context"
	"fmt"

	"github.com/projkit-labs/projkit/internal/console"
	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/runtime"
	"github.com/projkit-labs/projkit/internal/templates"
	"github.com/projkit-labs/projkit/internal/tools"
)

// Status is the terminal state of one tool's job.
type Status int

const (
	Skipped Status = iota
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of one tool's job.
type Outcome struct {
	Tool      tools.ToolName
	Status    Status
	Err       *Error   // set when Status is Failed
	Conflicts []*Error // files left untouched, any status
}

// Installer installs the resolved packages before any job runs.
type Installer interface {
	Install(ctx context.Context, packages []string, m pkgmanager.Manager) error
}

// Runner installs dependencies and then runs every registered job.
type Runner struct {
	Registry  *Registry
	Installer Installer
	Templates templates.Store
	Process   runtime.Runner
	Console   *console.Console
	Dir       string
}

// Run installs the packages for sel and runs each registered job in order.
// An install failure is returned as a KindFatal *Error with no outcomes.
// Job failures never stop the loop; they are reported in the outcomes.
func (r *Runner) Run(ctx context.Context, sel tools.Selection, pm pkgmanager.Manager) ([]Outcome, error) {
	if err := r.Installer.Install(ctx, tools.Packages(sel), pm); err != nil {
		return nil, &Error{Kind: KindFatal, Err: err}
	}

	jobs := r.Registry.Jobs()
	outcomes := make([]Outcome, 0, len(jobs))
	for _, job := range jobs {
		name := job.Tool()
		if !sel.Wants(name) {
			r.Console.Unimportant("Skip %s", name)
			outcomes = append(outcomes, Outcome{Tool: name, Status: Skipped})
			continue
		}

		env := &Env{
			Selection: sel,
			Manager:   pm,
			Dir:       r.Dir,
			Templates: r.Templates,
			Runner:    r.Process,
			Console:   r.Console,
			tool:      name,
		}

		outcome := Outcome{Tool: name, Status: Succeeded}
		if err := runJob(ctx, job, env); err != nil {
			outcome.Status = Failed
			outcome.Err = &Error{Kind: KindPerJob, Tool: name, Err: err}
			r.Console.Error("%v", err)
			r.Console.Error("%s job fail", name)
		} else {
			r.Console.Success("%s job success.", name)
		}
		outcome.Conflicts = env.conflicts
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// runJob runs one job, turning a panic into an error so it stays isolated.
func runJob(ctx context.Context, job Job, env *Env) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job panicked: %v", p)
		}
	}()
	return job.Run(ctx, env)
}
