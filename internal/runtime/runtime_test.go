package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"plain", Command{Name: "pnpm", Args: []string{"add", "eslint", "-D"}}, "pnpm add eslint -D"},
		{"quoted arg", Command{Name: "npx", Args: []string{"husky", "add", ".husky/pre-commit", "npx lint-staged"}}, `npx husky add .husky/pre-commit "npx lint-staged"`},
		{"no args", Command{Name: "npm"}, "npm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var live bytes.Buffer
	r := &ExecRunner{Stdout: &live}
	out, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello; echo oops >&2"}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "hello\n")
	}
	if strings.TrimSpace(out.Stderr) != "oops" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "oops\n")
	}
	if strings.TrimSpace(live.String()) != "hello" {
		t.Errorf("live stdout = %q, want %q", live.String(), "hello\n")
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	r := &ExecRunner{}
	out, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo broken >&2; exit 42"}})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if exitErr.ExitCode != 42 || out.ExitCode != 42 {
		t.Errorf("exit code = %d/%d, want 42", exitErr.ExitCode, out.ExitCode)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not include stderr", err)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}
