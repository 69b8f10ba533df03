package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered once per timer interval and applied as a Tick command
type tickMsg time.Time

// tickCmd schedules the next tickMsg. It is re-armed only after the previous
// tick was handled, so a busy terminal delays ticks instead of queueing them.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
