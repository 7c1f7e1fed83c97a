// Package config manages user-level settings stored at ~/.projkit/config.yaml:
// the preselected package manager, tools that default to unwanted, and an
// optional template override directory. Settings can also come from
// PROJKIT_* environment variables.
package config
