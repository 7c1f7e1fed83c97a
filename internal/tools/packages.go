package tools

// PackageList is the ordered list of package names handed to the installer.
// Duplicates are kept.
type PackageList []string

// Companion and integration packages added by cross-tool rules.
const (
	CommitizenCLI          = "git-cz"
	TypeScriptESLintPlugin = "@typescript-eslint/eslint-plugin"
	TypeScriptESLintParser = "@typescript-eslint/parser"
	ESLintConfigPrettier   = "eslint-config-prettier"
)

// Packages resolves a selection into the packages to install. Each wanted
// tool contributes its own package (editorconfig needs none), followed by
// the companion packages the tool combinations require. The rules read the
// final selection flags only.
func Packages(sel Selection) PackageList {
	packages := PackageList{}
	for _, name := range DefaultOrder() {
		if name == EditorConfig {
			continue
		}
		if sel.Wants(name) {
			packages = append(packages, string(name))
		}
	}

	if sel.Wants(Commitizen) {
		packages = append(packages, CommitizenCLI)
	}
	if sel.Wants(TypeScript) && sel.Wants(ESLint) {
		packages = append(packages, TypeScriptESLintPlugin, TypeScriptESLintParser)
	}
	if sel.Wants(Prettier) && sel.Wants(ESLint) {
		packages = append(packages, ESLintConfigPrettier)
	}
	return packages
}
