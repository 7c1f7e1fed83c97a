// Package pkgmanager builds and runs package-manager commands: the single
// dev-dependency install that gates every tool job, and the npm script
// registration the git-hook job relies on.
package pkgmanager
