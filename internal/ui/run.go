// ABOUTME: Program construction and the blocking entry point for the local TUI
// ABOUTME: Wires the theme bridge to the program and tears it down on exit

package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	pilog "github.com/mauromedda/themeswitch-go/internal/log"
)

// NewProgram builds a program around a fresh model with the theme bridge
// attached. The returned cleanup must run after the program exits.
func NewProgram(deps Deps, opts ...tea.ProgramOption) (*tea.Program, func()) {
	m := NewModel(deps)
	p := tea.NewProgram(m, opts...)
	stop := Bridge(m.sh.ctx, deps.Store, p)
	return p, func() {
		stop()
		m.sh.cancel()
	}
}

// Run starts the storefront on the local terminal and blocks until exit.
// Log lines go to deps.LogFile (or nowhere) while the program owns the screen.
func Run(deps Deps) error {
	restore := redirectLogs(deps.LogFile)
	defer restore()

	p, cleanup := NewProgram(deps, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	defer cleanup()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

// redirectLogs points the logger at path, or discards it when path is empty or
// cannot be opened. The returned func restores the previous writer.
func redirectLogs(path string) func() {
	if path != "" {
		restore, err := pilog.OpenFile(path)
		if err == nil {
			return restore
		}
		pilog.Warn("ui: %v; discarding logs", err)
	}
	prev := pilog.SetOutput(io.Discard)
	return func() { pilog.SetOutput(prev) }
}
