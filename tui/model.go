// Package tui renders a game session in the terminal with Bubble Tea and
// translates key presses, mouse clicks and the periodic timer into commands.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	title  = "Game of Life"
	legend = "[r] Random  [s] Step  [enter] Start  [space] Stop  [c] Reset  [t] Toggle  [q] Quit"

	// gridTop is the first screen row of the grid, below the title and a blank line
	gridTop = 2
	// cellWidth is how many terminal columns one cell occupies
	cellWidth = 2

	cursorAliveGlyph = "▓▓"
	cursorDeadGlyph  = "[]"
)

// Model is the Bubble Tea model driving one session
type Model struct {
	session  *game.Session
	interval time.Duration
	stats    *utils.Stats
	now      func() time.Time

	snap      game.Snapshot
	cursorRow int
	cursorCol int
}

// NewModel returns a model for session ticking at cfg.TickInterval
func NewModel(session *game.Session, cfg utils.Config) *Model {
	m := &Model{
		session:  session,
		interval: cfg.TickInterval,
		stats:    utils.NewStats(),
		now:      time.Now,
	}
	m.refresh()
	return m
}

// Init starts the tick timer
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update maps input and timer messages onto session commands
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.apply(game.Command{Kind: game.Tick})
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "r":
		m.apply(game.Command{Kind: game.Random})
	case "s", "n":
		m.apply(game.Command{Kind: game.Step})
	case "enter", "g":
		m.apply(game.Command{Kind: game.Start})
	case " ", "space", "p":
		m.apply(game.Command{Kind: game.Stop})
	case "c":
		m.apply(game.Command{Kind: game.Reset})
	case "t":
		m.apply(game.ToggleCellAt(m.cursorRow*m.snap.Width + m.cursorCol))
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	row, col := msg.Y-gridTop, msg.X/cellWidth
	if row < 0 || row >= m.snap.Height || col < 0 || col >= m.snap.Width {
		return
	}
	m.cursorRow, m.cursorCol = row, col
	m.apply(game.ToggleCellAt(row*m.snap.Width + col))
}

func (m *Model) moveCursor(dRow, dCol int) {
	m.cursorRow = (m.cursorRow + dRow + m.snap.Height) % m.snap.Height
	m.cursorCol = (m.cursorCol + dCol + m.snap.Width) % m.snap.Width
}

// apply runs cmd and refreshes the cached frame only when the grid changed
func (m *Model) apply(cmd game.Command) {
	if m.session.Apply(cmd) {
		m.refresh()
		return
	}
	m.snap.Active = m.session.Active()
}

func (m *Model) refresh() {
	m.snap = m.session.Snapshot()
	m.stats.Update(m.snap.Generation, m.snap.Population, m.now())
}

// View draws the cached frame
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n\n")
	for row := range m.snap.Height {
		for col := range m.snap.Width {
			b.WriteString(m.glyph(row, col))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(legend)
	b.WriteByte('\n')
	b.WriteString(m.status())
	b.WriteByte('\n')

	return b.String()
}

func (m *Model) glyph(row, col int) string {
	alive := m.snap.Alive(row, col)
	switch {
	case row == m.cursorRow && col == m.cursorCol && alive:
		return cursorAliveGlyph
	case row == m.cursorRow && col == m.cursorCol:
		return cursorDeadGlyph
	case alive:
		return model.AliveGlyph
	default:
		return model.DeadGlyph
	}
}

func (m *Model) status() string {
	state := "Paused"
	if m.snap.Active {
		state = "Running"
	}

	status := fmt.Sprintf("%s | Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec",
		state, m.snap.Generation, m.snap.Population, m.stats.AveragePopulation, m.stats.GenerationsPerSecond)
	switch {
	case m.snap.Population == 0:
		status += " | Extinct"
	case m.snap.Stagnant:
		status += " | Stagnant"
	}
	return status
}
