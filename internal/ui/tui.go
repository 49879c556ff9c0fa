// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the visualizer UI
package ui

import (
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI bound to the given engine
func Run(eng *engine.Engine) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	return p, nil
}
