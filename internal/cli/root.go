package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/projkit-labs/projkit/internal/branding"
	"github.com/projkit-labs/projkit/internal/console"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagTools     string
	flagManager   string
	flagTemplates string
	flagDir       string
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up development tooling for a JavaScript project. It asks which
tools you want and which package manager to use, installs the packages as dev
dependencies, and copies configuration files into the project.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagTools, "tools", "", "Comma-separated tools to install, skipping the tools prompt")
	f.StringVar(&flagManager, "pm", "", "Package manager (pnpm, yarn, npm), skipping the package manager prompt")
	f.StringVar(&flagTemplates, "templates", "", "Directory to read configuration templates from")
	f.StringVar(&flagDir, "dir", "", "Project directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console.Stderr(colorOptions()...).Error("%v", err)
	}
	return err
}

func newConsole(w io.Writer) *console.Console {
	return console.New(w, colorOptions()...)
}

func colorOptions() []console.Option {
	if flagNoColor {
		return []console.Option{console.WithoutColor()}
	}
	return nil
}
