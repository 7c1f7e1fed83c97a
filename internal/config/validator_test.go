package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		valid       bool
		wantKeyword string
	}{
		{"empty document", "", true, ""},
		{"full config", "package_manager: npm\nunwanted: [husky]\ntemplates_dir: ./tpl\n", true, ""},
		{"unknown manager", "package_manager: bun\n", false, "enum"},
		{"unknown tool", "unwanted: [tslint]\n", false, "enum"},
		{"duplicate tool", "unwanted: [husky, husky]\n", false, "uniqueItems"},
		{"unknown key", "colour: red\n", false, "additionalProperties"},
		{"empty templates dir", "templates_dir: \"\"\n", false, "minLength"},
		{"unwanted not a list", "unwanted: husky\n", false, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.valid, result.Issues)
			}
			if tt.wantKeyword == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.wantKeyword {
					found = true
				}
			}
			if !found {
				t.Errorf("issues %v missing keyword %q", result.Issues, tt.wantKeyword)
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("package_manager: [unclosed\n")); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("unwanted: [husky, tslint]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if !strings.Contains(result.Summary(), "/unwanted/1") {
		t.Errorf("Summary() = %q, want the offending path", result.Summary())
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ValidateFile(missing): expected error, got nil")
	}
}
