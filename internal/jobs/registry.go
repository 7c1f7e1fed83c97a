package jobs

import (
	"fmt"

	"github.com/projkit-labs/projkit/internal/tools"
)

// Registry is an ordered list of jobs, at most one per tool.
type Registry struct {
	jobs []Job
}

// NewRegistry orders jobs by their tool's position in order. A job for a
// tool missing from order, or two jobs for the same tool, is an error.
func NewRegistry(order []tools.ToolName, jobs ...Job) (*Registry, error) {
	byTool := make(map[tools.ToolName]Job, len(jobs))
	for _, j := range jobs {
		if _, dup := byTool[j.Tool()]; dup {
			return nil, fmt.Errorf("duplicate job for %s", j.Tool())
		}
		byTool[j.Tool()] = j
	}

	r := &Registry{}
	for _, name := range order {
		if j, ok := byTool[name]; ok {
			r.jobs = append(r.jobs, j)
			delete(byTool, name)
		}
	}
	if len(byTool) > 0 {
		var stray []tools.ToolName
		for name := range byTool {
			stray = append(stray, name)
		}
		return nil, fmt.Errorf("jobs not in the run order: %v", stray)
	}
	return r, nil
}

// DefaultRegistry returns the built-in jobs in default tool order.
// TypeScript has no job; installing the package is all it needs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(tools.DefaultOrder(),
		CopyJob{Name: tools.Commitizen, Files: []string{".czrc", ".git-cz.json"}},
		HuskyJob{},
		CopyJob{Name: tools.LintStaged, Files: []string{".lintstagedrc"}},
		CopyJob{Name: tools.EditorConfig, Files: []string{".editorconfig"}},
		CopyJob{Name: tools.Prettier, Files: []string{".prettierrc"}},
		CopyJob{Name: tools.ESLint, Files: []string{".eslintrc"}},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Jobs returns the jobs in run order.
func (r *Registry) Jobs() []Job {
	out := make([]Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}
