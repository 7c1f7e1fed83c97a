// Package jobs runs the per-tool setup actions after the dependency install.
// Jobs run one at a time in a fixed order; a failing job is reported and the
// remaining jobs still run. Only an install failure aborts the sequence.
package jobs
