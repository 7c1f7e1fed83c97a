package runtime

import (
	"context"
	"testing"
)

type staticRunner struct {
	out *Output
	err error
	got []Command
}

func (s *staticRunner) Run(_ context.Context, c Command) (*Output, error) {
	s.got = append(s.got, c)
	return s.out, s.err
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"10.2.4\n", "10.2.4", false},
		{"v20.11.1", "20.11.1", false},
		{"git version 2.43.0", "2.43.0", false},
		{"9.0.0-beta.1", "9.0.0-beta.1", false},
		{"no digits here", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.input, v, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	v, err := ParseVersion("7.24.0")
	if err != nil {
		t.Fatal(err)
	}
	if !AtLeast(v, "7.24.0") {
		t.Error("AtLeast(7.24.0, 7.24.0) = false, want true")
	}
	if AtLeast(v, "8.0.0") {
		t.Error("AtLeast(7.24.0, 8.0.0) = true, want false")
	}
}

func TestVersion(t *testing.T) {
	r := &staticRunner{out: &Output{Stdout: "8.19.2\n"}}
	v, err := Version(context.Background(), r, "/tmp", "npm")
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if v.String() != "8.19.2" {
		t.Errorf("Version() = %s, want 8.19.2", v)
	}
	if len(r.got) != 1 || r.got[0].Name != "npm" || r.got[0].Args[0] != "--version" {
		t.Errorf("ran %v, want npm --version", r.got)
	}
}
