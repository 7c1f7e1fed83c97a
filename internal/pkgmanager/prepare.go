package pkgmanager

import (
	"context"

	"github.com/projkit-labs/projkit/internal/runtime"
)

// npm 7.24 introduced "npm pkg set"; npm 9 removed "npm set-script".
const npmPkgSetSince = "7.24.0"

// SetScriptCommand returns the npm command that registers a package.json
// script, picking the syntax the installed npm understands. When the npm
// version cannot be determined the modern form is used.
func SetScriptCommand(ctx context.Context, r runtime.Runner, dir, name, script string) runtime.Command {
	v, err := runtime.Version(ctx, r, dir, "npm")
	if err == nil && !runtime.AtLeast(v, npmPkgSetSince) {
		return runtime.Command{Dir: dir, Name: "npm", Args: []string{"set-script", name, script}}
	}
	return runtime.Command{Dir: dir, Name: "npm", Args: []string{"pkg", "set", "scripts." + name + "=" + script}}
}
