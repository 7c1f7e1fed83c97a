package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console writes styled status messages to one writer.
type Console struct {
	w           io.Writer
	interactive bool

	errorStyle       lipgloss.Style
	successStyle     lipgloss.Style
	logStyle         lipgloss.Style
	unimportantStyle lipgloss.Style
	boxStyle         lipgloss.Style
}

// Option customizes a Console.
type Option func(*lipgloss.Renderer)

// WithoutColor forces plain output regardless of the terminal.
func WithoutColor() Option {
	return func(r *lipgloss.Renderer) { r.SetColorProfile(termenv.Ascii) }
}

// New returns a Console writing to w. Colors follow the terminal
// capabilities of w; writers that are not terminals get plain text.
func New(w io.Writer, opts ...Option) *Console {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		w:                w,
		interactive:      isTerminal(w),
		errorStyle:       r.NewStyle().Foreground(lipgloss.Color("9")),
		successStyle:     r.NewStyle().Foreground(lipgloss.Color("10")),
		logStyle:         r.NewStyle().Foreground(lipgloss.Color("12")),
		unimportantStyle: r.NewStyle().Foreground(lipgloss.Color("8")),
		boxStyle:         r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1).BorderForeground(lipgloss.Color("12")),
	}
}

// Stderr returns a Console on os.Stderr.
func Stderr(opts ...Option) *Console {
	return New(os.Stderr, opts...)
}

// Error prints a failure or conflict line.
func (c *Console) Error(format string, args ...any) {
	c.println(c.errorStyle, format, args...)
}

// Success prints a completion line.
func (c *Console) Success(format string, args ...any) {
	c.println(c.successStyle, format, args...)
}

// Log prints a progress line.
func (c *Console) Log(format string, args ...any) {
	c.println(c.logStyle, format, args...)
}

// Unimportant prints a low-priority line such as a skipped step.
func (c *Console) Unimportant(format string, args ...any) {
	c.println(c.unimportantStyle, format, args...)
}

// Box prints text inside a rounded border.
func (c *Console) Box(text string) {
	fmt.Fprintln(c.w, c.boxStyle.Render(text))
}

func (c *Console) println(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(c.w, style.Render(fmt.Sprintf(format, args...)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
