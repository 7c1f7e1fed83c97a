// Package cli defines the Cobra command tree for the projkit CLI. The root
// command runs the scaffold flow; every other file registers one subcommand
// (list, doctor, config, version) with it. Commands delegate to internal
// packages and only handle flags, I/O formatting, and user interaction.
package cli
