package runtime

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// Version runs "<bin> --version" and parses the first semantic version found
// in its output.
func Version(ctx context.Context, r Runner, dir, bin string) (*semver.Version, error) {
	out, err := r.Run(ctx, Command{Dir: dir, Name: bin, Args: []string{"--version"}})
	if err != nil {
		return nil, err
	}
	return ParseVersion(out.Stdout)
}

// ParseVersion extracts a semantic version from free-form tool output such
// as "v20.11.1" or "git version 2.43.0".
func ParseVersion(text string) (*semver.Version, error) {
	match := versionPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(text))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(match, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v, nil
}

// AtLeast reports whether v is greater than or equal to min.
func AtLeast(v *semver.Version, min string) bool {
	c, err := semver.NewConstraint(">= " + min)
	if err != nil {
		return false
	}
	return c.Check(v)
}
