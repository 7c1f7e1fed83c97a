package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/projkit-labs/projkit/internal/config"
	"github.com/projkit-labs/projkit/internal/console"
	"github.com/projkit-labs/projkit/internal/jobs"
	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/prompt"
	"github.com/projkit-labs/projkit/internal/runtime"
	"github.com/projkit-labs/projkit/internal/templates"
	"github.com/projkit-labs/projkit/internal/tools"
)

// scaffoldOptions carries everything one scaffold run needs. Empty Tools and
// Manager fields mean the user is asked.
type scaffoldOptions struct {
	Dir          string
	ToolsSet     bool
	Tools        string
	Manager      string
	TemplatesDir string

	In      io.Reader
	Out     io.Writer
	Console *console.Console
	Process runtime.Runner
}

func runScaffold(cmd *cobra.Command, args []string) error {
	con := newConsole(cmd.ErrOrStderr())
	if err := config.Load(); err != nil {
		con.Error("Ignoring configuration: %v", err)
	} else {
		warnInvalidConfig(con)
	}

	dir := flagDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}

	templatesDir := flagTemplates
	if templatesDir == "" {
		templatesDir = config.TemplatesDir()
	}

	_, err := scaffold(cmd.Context(), scaffoldOptions{
		Dir:          dir,
		ToolsSet:     cmd.Flags().Changed("tools"),
		Tools:        flagTools,
		Manager:      flagManager,
		TemplatesDir: templatesDir,
		In:           cmd.InOrStdin(),
		Out:          cmd.ErrOrStderr(),
		Console:      con,
		Process:      &runtime.ExecRunner{},
	})
	return err
}

// scaffold asks both questions, then installs packages and runs the jobs.
// Nothing is installed or written until both answers are known.
func scaffold(ctx context.Context, o scaffoldOptions) ([]jobs.Outcome, error) {
	store, err := templates.Open(o.TemplatesDir)
	if err != nil {
		return nil, err
	}

	p := prompt.New(o.In, o.Out)

	sel, err := chooseTools(p, o)
	if err != nil {
		return nil, err
	}
	pm, err := chooseManager(p, o)
	if err != nil {
		return nil, err
	}

	runner := &jobs.Runner{
		Registry: jobs.DefaultRegistry(),
		Installer: &pkgmanager.Installer{
			Runner:  o.Process,
			Console: o.Console,
			Dir:     o.Dir,
		},
		Templates: store,
		Process:   o.Process,
		Console:   o.Console,
		Dir:       o.Dir,
	}
	outcomes, err := runner.Run(ctx, sel, pm)
	if err != nil {
		return nil, err
	}
	printSummary(o.Console, outcomes)
	return outcomes, nil
}

func chooseTools(p *prompt.Prompter, o scaffoldOptions) (tools.Selection, error) {
	if o.ToolsSet {
		names, err := tools.ParseList(o.Tools)
		if err != nil {
			return tools.Selection{}, err
		}
		return tools.Only(names...)
	}

	unwanted := make(map[tools.ToolName]bool)
	for _, s := range config.Unwanted() {
		if name, ok := tools.ParseToolName(s); ok {
			unwanted[name] = true
		}
	}
	return p.SelectTools(tools.DefaultOrder(), unwanted)
}

func chooseManager(p *prompt.Prompter, o scaffoldOptions) (pkgmanager.Manager, error) {
	if o.Manager != "" {
		return pkgmanager.ParseManager(o.Manager)
	}

	def := pkgmanager.PNPM
	if configured, err := pkgmanager.ParseManager(config.PackageManager()); err == nil {
		def = configured
	}
	return p.SelectManager(pkgmanager.All(), def)
}

func printSummary(con *console.Console, outcomes []jobs.Outcome) {
	var succeeded, failed, skipped, conflicts int
	for _, o := range outcomes {
		switch o.Status {
		case jobs.Succeeded:
			succeeded++
		case jobs.Failed:
			failed++
		case jobs.Skipped:
			skipped++
		}
		conflicts += len(o.Conflicts)
	}
	con.Unimportant("%d succeeded, %d failed, %d skipped, %d files left untouched",
		succeeded, failed, skipped, conflicts)
}

// warnInvalidConfig reports schema problems in the config file without
// stopping the run.
func warnInvalidConfig(con *console.Console) {
	result, err := config.ValidateFile(config.FilePath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			con.Error("Could not validate configuration: %v", err)
		}
		return
	}
	if !result.Valid {
		con.Error("Configuration %s has problems: %s", config.FilePath(), result.Summary())
	}
}
