package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/projkit-labs/projkit/internal/config"
	"github.com/projkit-labs/projkit/internal/runtime"
	"github.com/projkit-labs/projkit/internal/templates"
)

// doctorBinaries are the programs a scaffold run may invoke.
var doctorBinaries = []string{"node", "npm", "pnpm", "yarn", "npx", "git"}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain",
	Long: `Report which of node, npm, pnpm, yarn, npx and git are on PATH, their versions,
whether the configuration file is valid, and whether the template directory
has every file the jobs copy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		d := doctor{Out: cmd.OutOrStdout(), Runner: &runtime.ExecRunner{}, LookPath: exec.LookPath}
		d.run(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctor struct {
	Out      io.Writer
	Runner   runtime.Runner
	LookPath func(string) (string, error)
}

func (d doctor) run(ctx context.Context) {
	fmt.Fprintln(d.Out, "Runtime check:")
	for _, bin := range doctorBinaries {
		d.checkBinary(ctx, bin)
	}
	d.checkConfig()
	d.checkTemplates(config.TemplatesDir())
}

func (d doctor) checkBinary(ctx context.Context, name string) {
	path, err := d.LookPath(name)
	if err != nil {
		fmt.Fprintf(d.Out, "  [MISS] %s not found\n", name)
		return
	}
	v, err := runtime.Version(ctx, d.Runner, "", name)
	if err != nil {
		fmt.Fprintf(d.Out, "  [WARN] %s found at %s, version unknown: %v\n", name, path, err)
		return
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s %s found at %s\n", name, v, path)
}

func (d doctor) checkConfig() {
	fmt.Fprintln(d.Out, "Config check:")
	path := config.FilePath()
	result, err := config.ValidateFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(d.Out, "  [INFO] %s not found, using defaults\n", path)
	case err != nil:
		fmt.Fprintf(d.Out, "  [FAIL] %v\n", err)
	case !result.Valid:
		fmt.Fprintf(d.Out, "  [FAIL] %s: %s\n", path, result.Summary())
	default:
		fmt.Fprintf(d.Out, "  [ OK ] %s is valid\n", path)
	}
}

// checkTemplates reports template files the jobs copy that the store lacks.
func (d doctor) checkTemplates(dir string) {
	fmt.Fprintln(d.Out, "Templates check:")
	store, err := templates.Open(dir)
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] %v\n", err)
		return
	}
	names, err := store.Names()
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] listing templates: %v\n", err)
		return
	}
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, name := range copiedFiles() {
		if have[name] {
			fmt.Fprintf(d.Out, "  [ OK ] %s\n", name)
		} else {
			fmt.Fprintf(d.Out, "  [MISS] %s not found in %s\n", name, store)
		}
	}
}
