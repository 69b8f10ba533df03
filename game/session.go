package game

import (
	"io"
	"log"
	"sync"

	"github.com/sheikhrachel/go-life/model"
)

// Snapshot is a copy of everything a renderer needs to draw one frame
type Snapshot struct {
	Width      int
	Height     int
	Cells      []bool // Row-major, index = row*Width + col
	Active     bool
	Generation int
	Population int
	Stagnant   bool
}

// Session owns one grid and its run state. All access goes through a single
// mutex, so a ticker goroutine and an input goroutine can share a Session.
type Session struct {
	mu         sync.Mutex
	grid       *model.Grid
	active     bool
	generation int
	logger     *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for run state and bulk grid changes
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession returns a paused session driving grid
func NewSession(grid *model.Grid, opts ...Option) *Session {
	s := &Session{
		grid:   grid,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply executes cmd and reports whether the visible grid changed.
// ToggleCell with an index outside the grid panics.
func (s *Session) Apply(cmd Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Kind {
	case Random:
		s.grid.RandomMutate()
		s.generation = 0
		s.logger.Println("Random")
		return true
	case Start:
		s.active = true
		s.logger.Println("Start")
		return false
	case Step:
		s.step()
		return true
	case Reset:
		s.grid.Reset()
		s.generation = 0
		s.logger.Println("Reset")
		return true
	case Stop:
		s.active = false
		s.logger.Println("Stop")
		return false
	case ToggleCell:
		s.grid.ToggleCell(cmd.Index)
		return true
	case Tick:
		if !s.active {
			return false
		}
		s.step()
		return true
	}
	return false
}

func (s *Session) step() {
	s.grid.Step()
	s.grid.UpdateHistory()
	s.generation++
}

// Active reports whether ticks currently advance the grid
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Len returns the number of cells, the exclusive upper bound for ToggleCell indices
func (s *Session) Len() int {
	return s.grid.Len()
}

// Contains reports whether idx is a valid ToggleCell index
func (s *Session) Contains(idx int) bool {
	return idx >= 0 && idx < s.grid.Len()
}

// Snapshot copies the current cell states and run state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		cells = s.grid.Cells()
		snap  = Snapshot{
			Width:      s.grid.Width(),
			Height:     s.grid.Height(),
			Cells:      make([]bool, len(cells)),
			Active:     s.active,
			Generation: s.generation,
			Population: s.grid.CountLivingCells(),
			Stagnant:   s.grid.IsStagnant(),
		}
	)
	for i, c := range cells {
		snap.Cells[i] = c.IsAlive()
	}
	return snap
}

// Alive reports whether the cell at row, col of the snapshot is alive; coordinates must be in range
func (s Snapshot) Alive(row, col int) bool {
	return s.Cells[row*s.Width+col]
}
