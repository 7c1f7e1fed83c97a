// Package runtime runs external programs (package managers, npx, git) on
// behalf of the scaffolder and captures their output. The Runner interface
// lets tests substitute a recorder for real processes.
package runtime
