// Package prompt asks the user which tools to set up and which package
// manager to use. On a terminal it renders bubbletea widgets; otherwise it
// falls back to numbered menus read line by line.
package prompt
