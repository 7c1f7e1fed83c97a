package console

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type workDoneMsg struct{ err error }

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
	err     error
}

func (m spinnerModel) Init() tea.Cmd { return m.spinner.Tick }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// Spin runs fn while showing an animated spinner labelled title. On a
// non-terminal writer the title is printed once instead. fn always runs to
// completion; its error is returned unchanged.
func (c *Console) Spin(title string, fn func() error) error {
	if !c.interactive {
		c.Unimportant("%s...", title)
		return fn()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = c.logStyle

	p := tea.NewProgram(spinnerModel{spinner: s, title: title},
		tea.WithOutput(c.w), tea.WithInput(nil))

	errCh := make(chan error, 1)
	go func() {
		err := fn()
		errCh <- err
		p.Send(workDoneMsg{err: err})
	}()

	// Renderer errors are ignored; fn's error is returned.
	_, _ = p.Run()
	return <-errCh
}
