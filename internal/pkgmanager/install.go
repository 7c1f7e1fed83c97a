package pkgmanager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/projkit-labs/projkit/internal/console"
	"github.com/projkit-labs/projkit/internal/runtime"
)

// WorkspaceFile marks the root of a pnpm multi-package workspace.
const WorkspaceFile = "pnpm-workspace.yaml"

// InstallError reports a failed dependency install. It wraps the process
// error when there was one; otherwise the install failed because it wrote to
// stderr.
type InstallError struct {
	Command runtime.Command
	Stderr  string
	Err     error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("installing packages with %q: %v", e.Command.String(), e.Err)
	}
	return fmt.Sprintf("installing packages with %q: %s", e.Command.String(), strings.TrimSpace(e.Stderr))
}

func (e *InstallError) Unwrap() error { return e.Err }

// InWorkspace reports whether dir is the root of a pnpm workspace.
func InWorkspace(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, WorkspaceFile))
	return err == nil
}

// InstallCommand builds the command that adds packages as dev dependencies.
func InstallCommand(m Manager, packages []string, dir string) (runtime.Command, error) {
	args := append([]string{"add"}, packages...)
	args = append(args, "-D")

	switch m {
	case PNPM:
		if InWorkspace(dir) {
			args = append(args, "-w")
		}
	case NPM, Yarn:
	default:
		return runtime.Command{}, fmt.Errorf("unknown package manager: %s", m)
	}
	return runtime.Command{Dir: dir, Name: string(m), Args: args}, nil
}

// Installer runs the dependency install for a project directory.
type Installer struct {
	Runner  runtime.Runner
	Console *console.Console
	Dir     string
}

// Install adds packages as dev dependencies in one invocation. An empty list
// is a no-op success. Any process error, non-zero exit, or output on stderr
// fails the install with an *InstallError.
func (in *Installer) Install(ctx context.Context, packages []string, m Manager) error {
	if len(packages) == 0 {
		in.Console.Unimportant("No packages need to install")
		return nil
	}

	cmd, err := InstallCommand(m, packages, in.Dir)
	if err != nil {
		return err
	}
	in.Console.Log("Install packages with %s: %s", m, strings.Join(packages, " "))

	var out *runtime.Output
	err = in.Console.Spin("Installing", func() error {
		var runErr error
		out, runErr = in.Runner.Run(ctx, cmd)
		return runErr
	})
	if err != nil {
		installErr := &InstallError{Command: cmd, Err: err}
		if out != nil {
			installErr.Stderr = out.Stderr
		}
		return installErr
	}
	if out != nil && out.Stderr != "" {
		return &InstallError{Command: cmd, Stderr: out.Stderr}
	}

	in.Console.Success("Packages installed")
	if out != nil && strings.TrimSpace(out.Stdout) != "" {
		in.Console.Box(strings.TrimRight(out.Stdout, "\n"))
	}
	return nil
}
