package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/tools"
)

// readTools shows a numbered list and reads the numbers of the tools to flip
// between wanted and unwanted. Unlisted tools keep their defaults, and a
// blank answer keeps them all.
func (p *Prompter) readTools(order []tools.ToolName, unwanted []bool) ([]bool, error) {
	fmt.Fprintf(p.Out, "\n? %s\n", toolsQuestion)
	for i, name := range order {
		state := "wanted"
		if unwanted[i] {
			state = "unwanted"
		}
		fmt.Fprintf(p.Out, "  %d) %s (%s)\n", i+1, name, state)
	}
	fmt.Fprint(p.Out, "Enter the numbers of tools to toggle, comma-separated (blank keeps the defaults): ")

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(unwanted))
	copy(out, unwanted)
	if line == "" {
		return out, nil
	}

	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > len(order) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", field, len(order))
		}
		out[num-1] = !unwanted[num-1]
	}
	return out, nil
}

// readManager shows a numbered list and returns the chosen index. A blank
// answer picks the default.
func (p *Prompter) readManager(managers []pkgmanager.Manager, def int) (int, error) {
	fmt.Fprintf(p.Out, "\n? %s\n", managerQuestion)
	for i, m := range managers {
		fmt.Fprintf(p.Out, "  %d) %s\n", i+1, m)
	}
	fmt.Fprintf(p.Out, "Enter number [1-%d] (default %d): ", len(managers), def+1)

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(managers) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(managers))
	}
	return num - 1, nil
}

// readLine reads one answer. Input that ends before any answer is an error
// so that a closed stdin never installs the defaults silently.
func (p *Prompter) readLine() (string, error) {
	line, err := p.lines().ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}
