// Package tools defines the fixed set of development tools the scaffolder can
// set up, the user's immutable selection over them, and the resolver that
// turns a selection into the list of packages to install.
package tools
