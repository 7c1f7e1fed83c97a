package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/tools"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

const (
	toolsQuestion   = "Select the tools to install (everything is installed into this project only)"
	managerQuestion = "Select the package manager to use"
)

// Prompter asks the setup questions.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// Interactive selects the bubbletea widgets. New sets it when both ends
	// are terminals.
	Interactive bool

	reader *bufio.Reader
}

// New returns a Prompter on the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out, Interactive: isTerminal(in) && isTerminal(out)}
}

// SelectTools asks which tools are wanted. Every tool in order starts as
// wanted unless it appears in unwanted.
func (p *Prompter) SelectTools(order []tools.ToolName, unwanted map[tools.ToolName]bool) (tools.Selection, error) {
	initial := make([]bool, len(order))
	for i, name := range order {
		initial[i] = unwanted[name]
	}

	var flags []bool
	var err error
	if p.Interactive {
		flags, err = p.runToolsModel(order, initial)
	} else {
		flags, err = p.readTools(order, initial)
	}
	if err != nil {
		return tools.Selection{}, err
	}

	wanted := make(map[tools.ToolName]bool, len(order))
	for i, name := range order {
		wanted[name] = !flags[i]
	}
	return tools.NewSelection(wanted)
}

// SelectManager asks for one package manager, preselecting def when it is
// among the choices.
func (p *Prompter) SelectManager(managers []pkgmanager.Manager, def pkgmanager.Manager) (pkgmanager.Manager, error) {
	if len(managers) == 0 {
		return "", fmt.Errorf("no package managers to choose from")
	}
	cursor := 0
	for i, m := range managers {
		if m == def {
			cursor = i
		}
	}

	var idx int
	var err error
	if p.Interactive {
		idx, err = p.runManagerModel(managers, cursor)
	} else {
		idx, err = p.readManager(managers, cursor)
	}
	if err != nil {
		return "", err
	}
	return managers[idx], nil
}

func (p *Prompter) runToolsModel(order []tools.ToolName, unwanted []bool) ([]bool, error) {
	final, err := tea.NewProgram(newToolsModel(order, unwanted),
		tea.WithInput(p.In), tea.WithOutput(p.Out)).Run()
	if err != nil {
		return nil, fmt.Errorf("running tools prompt: %w", err)
	}
	m := final.(toolsModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.unwanted, nil
}

func (p *Prompter) runManagerModel(managers []pkgmanager.Manager, cursor int) (int, error) {
	final, err := tea.NewProgram(newManagerModel(managers, cursor),
		tea.WithInput(p.In), tea.WithOutput(p.Out)).Run()
	if err != nil {
		return 0, fmt.Errorf("running package manager prompt: %w", err)
	}
	m := final.(managerModel)
	if m.aborted {
		return 0, ErrAborted
	}
	return m.cursor, nil
}

func (p *Prompter) lines() *bufio.Reader {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
