// Package templates is the read-only store of configuration files copied into
// target projects. The default store is embedded in the binary; a directory on
// disk can replace it for teams that ship their own conventions.
package templates
