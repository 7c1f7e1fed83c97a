package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/projkit-labs/projkit/internal/jobs"
	"github.com/projkit-labs/projkit/internal/tools"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported tools",
	Long: `List every supported tool in the order its job runs, with the packages it
adds and the files it writes.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry describes one tool for display.
type listEntry struct {
	Tool     string   `json:"tool"`
	Packages []string `json:"packages"`
	Files    []string `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries := listEntries()
	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TOOL\tPACKAGES\tFILES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Tool, dashIfEmpty(e.Packages), dashIfEmpty(e.Files))
	}
	return w.Flush()
}

// jobFiles maps each tool to the files its job writes.
func jobFiles() map[tools.ToolName][]string {
	files := make(map[tools.ToolName][]string)
	for _, job := range jobs.DefaultRegistry().Jobs() {
		switch j := job.(type) {
		case jobs.CopyJob:
			files[j.Tool()] = j.Files
		case jobs.HuskyJob:
			files[j.Tool()] = []string{jobs.PreCommitHook}
		}
	}
	return files
}

// copiedFiles lists the template names the copy jobs read, in job order.
func copiedFiles() []string {
	var names []string
	for _, job := range jobs.DefaultRegistry().Jobs() {
		if j, ok := job.(jobs.CopyJob); ok {
			names = append(names, j.Files...)
		}
	}
	return names
}

func listEntries() []listEntry {
	files := jobFiles()

	order := tools.DefaultOrder()
	entries := make([]listEntry, 0, len(order))
	for _, name := range order {
		entry := listEntry{Tool: string(name), Packages: contributed(name), Files: files[name]}
		if entry.Files == nil {
			entry.Files = []string{}
		}
		entries = append(entries, entry)
	}
	return entries
}

// contributed returns the packages that drop out of a full install when
// name is deselected: its own package plus any companions it enables.
func contributed(name tools.ToolName) []string {
	wanted := make(map[tools.ToolName]bool)
	for _, t := range tools.DefaultOrder() {
		wanted[t] = t != name
	}
	without, err := tools.NewSelection(wanted)
	if err != nil {
		return nil
	}

	remaining := make(map[string]int)
	for _, p := range tools.Packages(without) {
		remaining[p]++
	}
	out := []string{}
	for _, p := range tools.Packages(tools.All(true)) {
		if remaining[p] > 0 {
			remaining[p]--
			continue
		}
		out = append(out, p)
	}
	return out
}

func dashIfEmpty(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, " ")
}
