package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projkit-labs/projkit/internal/config"
	"github.com/projkit-labs/projkit/internal/console"
	"github.com/projkit-labs/projkit/internal/jobs"
	"github.com/projkit-labs/projkit/internal/runtime"
	"github.com/projkit-labs/projkit/internal/runtime/runtimetest"
	"github.com/projkit-labs/projkit/internal/tools"
)

// setupConfig points the config at an empty temp home, optionally writing a
// config file first.
func setupConfig(t *testing.T, contents string) {
	t.Helper()
	t.Setenv("PROJKIT_HOME", t.TempDir())
	if contents != "" {
		if err := config.EnsureDir(); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(config.FilePath(), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := config.Load(); err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
}

func testOptions(dir, input string, rec *runtimetest.Recorder) (scaffoldOptions, *bytes.Buffer) {
	var out bytes.Buffer
	return scaffoldOptions{
		Dir:     dir,
		In:      strings.NewReader(input),
		Out:     &out,
		Console: console.New(&out, console.WithoutColor()),
		Process: rec,
	}, &out
}

func statuses(outcomes []jobs.Outcome) map[tools.ToolName]jobs.Status {
	m := make(map[tools.ToolName]jobs.Status, len(outcomes))
	for _, o := range outcomes {
		m[o.Tool] = o.Status
	}
	return m
}

func TestScaffold_WithFlags(t *testing.T) {
	setupConfig(t, "")
	dir := t.TempDir()
	rec := runtimetest.New()

	opts, _ := testOptions(dir, "", rec)
	opts.ToolsSet = true
	opts.Tools = "prettier,eslint"
	opts.Manager = "npm"

	outcomes, err := scaffold(context.Background(), opts)
	if err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}

	cmds := rec.Commands()
	if len(cmds) != 1 || cmds[0] != "npm add prettier eslint eslint-config-prettier -D" {
		t.Errorf("commands = %v, want the single npm install", cmds)
	}

	got := statuses(outcomes)
	for tool, want := range map[tools.ToolName]jobs.Status{
		tools.Commitizen:   jobs.Skipped,
		tools.Husky:        jobs.Skipped,
		tools.LintStaged:   jobs.Skipped,
		tools.EditorConfig: jobs.Skipped,
		tools.Prettier:     jobs.Succeeded,
		tools.ESLint:       jobs.Succeeded,
	} {
		if got[tool] != want {
			t.Errorf("%s status = %v, want %v", tool, got[tool], want)
		}
	}

	for _, name := range []string{".prettierrc", ".eslintrc"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ".editorconfig")); !os.IsNotExist(err) {
		t.Error(".editorconfig should not be written for an unwanted tool")
	}
}

func TestScaffold_PromptsWhenFlagsAbsent(t *testing.T) {
	setupConfig(t, "")
	dir := t.TempDir()
	rec := runtimetest.New()

	// Mark typescript..editorconfig unwanted, then pick npm (third choice).
	opts, out := testOptions(dir, "1,2,3,4,5\n3\n", rec)

	if _, err := scaffold(context.Background(), opts); err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}
	if !rec.Ran("npm add prettier eslint eslint-config-prettier -D") {
		t.Errorf("commands = %v", rec.Commands())
	}
	if !strings.Contains(out.String(), "prettier job success.") {
		t.Errorf("output missing job success line:\n%s", out.String())
	}
}

func TestScaffold_ConfigDefaults(t *testing.T) {
	setupConfig(t, `package_manager: yarn
unwanted: [typescript, commitizen, husky, lint-staged, editorconfig, eslint]
`)
	dir := t.TempDir()
	rec := runtimetest.New()

	opts, _ := testOptions(dir, "\n\n", rec)

	if _, err := scaffold(context.Background(), opts); err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}
	cmds := rec.Commands()
	if len(cmds) != 1 || cmds[0] != "yarn add prettier -D" {
		t.Errorf("commands = %v, want [yarn add prettier -D]", cmds)
	}
}

func TestScaffold_InstallFailureIsFatal(t *testing.T) {
	setupConfig(t, "")
	dir := t.TempDir()
	rec := runtimetest.New().On("npm add", runtimetest.Response{
		Output: runtime.Output{Stderr: "npm ERR! code E404"},
	})

	opts, _ := testOptions(dir, "", rec)
	opts.ToolsSet = true
	opts.Tools = "prettier"
	opts.Manager = "npm"

	outcomes, err := scaffold(context.Background(), opts)
	if !jobs.IsFatal(err) {
		t.Fatalf("scaffold() error = %v, want a fatal error", err)
	}
	if outcomes != nil {
		t.Errorf("outcomes = %v, want none", outcomes)
	}
	if _, err := os.Stat(filepath.Join(dir, ".prettierrc")); !os.IsNotExist(err) {
		t.Error("no job should run after a failed install")
	}
}

func TestScaffold_EmptyToolsFlag(t *testing.T) {
	setupConfig(t, "")
	rec := runtimetest.New()

	opts, out := testOptions(t.TempDir(), "", rec)
	opts.ToolsSet = true
	opts.Manager = "pnpm"

	outcomes, err := scaffold(context.Background(), opts)
	if err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}
	if cmds := rec.Commands(); len(cmds) != 0 {
		t.Errorf("commands = %v, want none", cmds)
	}
	for _, o := range outcomes {
		if o.Status != jobs.Skipped {
			t.Errorf("%s status = %v, want skipped", o.Tool, o.Status)
		}
	}
	if !strings.Contains(out.String(), "No packages need to install") {
		t.Errorf("output missing empty-install notice:\n%s", out.String())
	}
}

func TestScaffold_RejectsBadInputBeforeActing(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tools   string
		toolsOn bool
		manager string
	}{
		{"unknown tool", "", "prettier,vim", true, "npm"},
		{"unknown manager", "", "prettier", true, "bun"},
		{"closed input", "", "", false, ""},
		{"manager question unanswered", "\n", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfig(t, "")
			dir := t.TempDir()
			rec := runtimetest.New()

			opts, _ := testOptions(dir, tt.input, rec)
			opts.ToolsSet = tt.toolsOn
			opts.Tools = tt.tools
			opts.Manager = tt.manager

			if _, err := scaffold(context.Background(), opts); err == nil {
				t.Fatal("expected an error")
			}
			if cmds := rec.Commands(); len(cmds) != 0 {
				t.Errorf("commands = %v, want none", cmds)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("project dir has %d entries, want none", len(entries))
			}
		})
	}
}

func TestScaffold_TemplatesOverride(t *testing.T) {
	setupConfig(t, "")
	templatesDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(templatesDir, ".prettierrc"), []byte("{\"semi\": false}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	opts, _ := testOptions(dir, "", runtimetest.New())
	opts.ToolsSet = true
	opts.Tools = "prettier"
	opts.Manager = "pnpm"
	opts.TemplatesDir = templatesDir

	if _, err := scaffold(context.Background(), opts); err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, ".prettierrc"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\"semi\": false}\n" {
		t.Errorf(".prettierrc = %q, want the override contents", data)
	}
}
