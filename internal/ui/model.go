// ABOUTME: Bubbletea model for the interactive visualizer TUI
// ABOUTME: Shows features, mood, genre, spectrum bars, and palette swatches
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// refreshInterval paces TUI redraws; the engine ticks on its own schedule
const refreshInterval = 50 * time.Millisecond

// frameMsg triggers a redraw from the latest engine snapshot
type frameMsg time.Time

// Model represents the TUI state
type Model struct {
	eng   *engine.Engine
	modes []string

	width  int
	height int
}

// NewModel creates a TUI model bound to an engine
func NewModel(eng *engine.Engine) Model {
	return Model{
		eng:   eng,
		modes: render.Modes(),
	}
}

// Init starts the redraw ticker
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "+", "=":
		m.eng.SetIntensity(m.eng.Intensity() + 0.1)
	case "-", "_":
		m.eng.SetIntensity(m.eng.Intensity() - 0.1)
	case "tab":
		m.cycleMode()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '8' {
			idx := int(key[0] - '1')
			if idx < len(m.modes) {
				_ = m.eng.SetMode(m.modes[idx])
			}
		}
	}
	return m, nil
}

func (m Model) cycleMode() {
	current := m.eng.Mode()
	for i, name := range m.modes {
		if name == current {
			_ = m.eng.SetMode(m.modes[(i+1)%len(m.modes)])
			return
		}
	}
}

// View renders the TUI
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sacred Soundscapes"))
	b.WriteString("\n\n")

	snap := m.eng.Snapshot()
	if snap == nil {
		b.WriteString(valueStyle.Render("Waiting for first analysis tick..."))
		b.WriteString("\n")
		return b.String()
	}

	f := snap.Features
	b.WriteString(headerStyle.Render("Mode: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%-8s", m.eng.Mode())))
	b.WriteString(headerStyle.Render("  Mood: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%-10s", f.Mood)))
	b.WriteString(headerStyle.Render("  Genre: "))
	b.WriteString(valueStyle.Render(string(snap.Context.Genre)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Tempo: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f bpm", f.Tempo)))
	b.WriteString(headerStyle.Render("  Intensity: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", m.eng.Intensity())))
	if snap.Context.BeatDrop {
		b.WriteString(headerStyle.Render("  DROP"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderMeter("bass   ", f.Bass))
	b.WriteString(renderMeter("mid    ", f.Mid))
	b.WriteString(renderMeter("treble ", f.Treble))
	b.WriteString(renderMeter("energy ", f.Energy))
	b.WriteString(renderMeter("rhythm ", f.Rhythm))
	b.WriteString(renderMeter("harmony", f.Harmony))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Spectrum"))
	b.WriteString("\n")
	b.WriteString(renderSpectrum(snap.Frame, 64))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(renderSwatch("primary   ", snap.Palette.Primary.Hex()))
	b.WriteString(renderSwatch("secondary ", snap.Palette.Secondary.Hex()))
	b.WriteString(renderSwatch("accent    ", snap.Palette.Accent.Hex()))
	b.WriteString(renderSwatch("glow      ", snap.Palette.Glow.Hex()))

	var particles strings.Builder
	for _, c := range snap.Palette.Particles {
		particles.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
		particles.WriteString(" ")
	}
	b.WriteString("particles  " + particles.String())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("1-8 mode · tab cycle · +/- intensity · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderMeter draws a labeled 20-cell bar; values may exceed 1 and are
// capped for display only
func renderMeter(label string, v float64) string {
	const cells = 20
	capped := v
	if capped > 1 {
		capped = 1
	}
	if capped < 0 {
		capped = 0
	}
	filled := int(capped * cells)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	return fmt.Sprintf("%s %s %.2f\n", label, bar, v)
}

// renderSpectrum compresses the frame into a single row of block glyphs
func renderSpectrum(frame []float64, columns int) string {
	if len(frame) == 0 || columns <= 0 {
		return "\n"
	}
	glyphs := []rune(" ▁▂▃▄▅▆▇█")

	var b strings.Builder
	for c := 0; c < columns; c++ {
		idx := c * len(frame) / columns
		v := frame[idx]
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		b.WriteRune(glyphs[int(v*float64(len(glyphs)-1))])
	}
	b.WriteString("\n")
	return b.String()
}

func renderSwatch(label, hex string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return fmt.Sprintf("%s %s %s\n", label, block, hex)
}
