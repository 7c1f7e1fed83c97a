package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "projkit" {
		t.Errorf("CLIName() = %q, want %q", got, "projkit")
	}
	if got := HomeDir(); got != ".projkit" {
		t.Errorf("HomeDir() = %q, want %q", got, ".projkit")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("templates_dir"); got != "PROJKIT_TEMPLATES_DIR" {
		t.Errorf("EnvVar() = %q, want %q", got, "PROJKIT_TEMPLATES_DIR")
	}
}
