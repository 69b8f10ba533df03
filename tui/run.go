package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

// Run shows session full screen until the user quits or ctx is cancelled.
// The tick timer dies with the program.
func Run(ctx context.Context, session *game.Session, cfg utils.Config) error {
	p := tea.NewProgram(
		NewModel(session, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "[Run] terminal UI failed")
	}
	return nil
}
