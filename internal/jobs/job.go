package jobs

import (
	"context"
	"fmt"

	"github.com/projkit-labs/projkit/internal/console"
	"github.com/projkit-labs/projkit/internal/materialize"
	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/runtime"
	"github.com/projkit-labs/projkit/internal/templates"
	"github.com/projkit-labs/projkit/internal/tools"
)

// Job is the setup action for one tool.
type Job interface {
	Tool() tools.ToolName
	Run(ctx context.Context, env *Env) error
}

// Env is what a job may use. The runner builds a fresh Env for each job.
type Env struct {
	Selection tools.Selection
	Manager   pkgmanager.Manager
	Dir       string
	Templates templates.Store
	Runner    runtime.Runner
	Console   *console.Console

	tool      tools.ToolName
	conflicts []*Error
}

// Conflict logs a file that was left in place and records it on the outcome.
func (e *Env) Conflict(c materialize.Conflict) {
	e.Console.Error("%s", c.Message())
	e.conflicts = append(e.conflicts, &Error{
		Kind: KindConflict,
		Tool: e.tool,
		Err:  fmt.Errorf("%s already exists", c.Path),
	})
}

// CopyJob copies template files into the project directory.
type CopyJob struct {
	Name  tools.ToolName
	Files []string
}

// Tool implements Job.
func (j CopyJob) Tool() tools.ToolName { return j.Name }

// Run implements Job. Existing files are conflicts, not failures.
func (j CopyJob) Run(_ context.Context, env *Env) error {
	result, err := materialize.Copy(env.Templates, env.Dir, j.Files...)
	if result != nil {
		for _, c := range result.Conflicts {
			env.Conflict(c)
		}
	}
	return err
}

// Git hook commands. The pre-commit hook runs lint-staged when it was
// selected and the test script otherwise.
const (
	huskyInstall     = "husky install"
	lintStagedAction = "npx lint-staged"
	testAction       = "npm test"
)

// PreCommitHook is the hook file the husky job creates.
const PreCommitHook = ".husky/pre-commit"

// HuskyJob wires git hooks through husky.
type HuskyJob struct{}

// Tool implements Job.
func (HuskyJob) Tool() tools.ToolName { return tools.Husky }

// Run implements Job. The steps run in order and the first failure stops
// the job.
func (HuskyJob) Run(ctx context.Context, env *Env) error {
	hook := testAction
	if env.Selection.Wants(tools.LintStaged) {
		hook = lintStagedAction
	}

	steps := []runtime.Command{
		pkgmanager.SetScriptCommand(ctx, env.Runner, env.Dir, "prepare", huskyInstall),
		{Dir: env.Dir, Name: "npm", Args: []string{"run", "prepare"}},
		{Dir: env.Dir, Name: "npx", Args: []string{"husky", "add", PreCommitHook, hook}},
	}
	for _, step := range steps {
		if _, err := env.Runner.Run(ctx, step); err != nil {
			return fmt.Errorf("running %s: %w", step, err)
		}
	}
	return nil
}
