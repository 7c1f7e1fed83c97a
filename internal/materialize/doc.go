// Package materialize copies configuration templates into a project
// directory. It never overwrites an existing file: a file already present at
// the destination is reported as a conflict and left untouched.
package materialize
