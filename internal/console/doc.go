// Package console prints the scaffolder's colored status lines. Everything
// goes to a single writer, stderr by default, so stdout stays free for
// command output such as `list`.
package console
