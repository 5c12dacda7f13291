// Package cli renders a small spinner while a single server request is in
// flight. When stdout is not a terminal the operation runs without any UI.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// opDoneMsg is sent when the wrapped operation has completed.
type opDoneMsg struct{ err error }

// spinModel holds the spinner, the label shown next to it, and the
// operation result once it arrives.
type spinModel struct {
	spinner spinner.Model
	label   string
	fn      func() error
	err     error
	done    bool
}

// newSpinModel initializes a spinModel with the shared dot spinner style.
func newSpinModel(label string, fn func() error) spinModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinModel{spinner: s, label: label, fn: fn}
}

// runOpCmd executes the operation and reports its completion.
func runOpCmd(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: fn()}
	}
}

// Init starts the spinner animation and kicks off the operation.
func (m spinModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runOpCmd(m.fn))
}

// Update handles spinner ticks and the operation's completion message.
func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = errors.New("aborted")
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the spinner line, or nothing once the operation is done.
func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), m.label)
}

// Spin runs fn while displaying a spinner with the given label and returns
// the operation's error. Off a terminal (tests, pipes, CI) fn runs
// directly.
func Spin(label string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}

	final, err := tea.NewProgram(newSpinModel(label, fn)).Run()
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	if m, ok := final.(spinModel); ok {
		return m.err
	}
	return nil
}
