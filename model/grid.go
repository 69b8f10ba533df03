package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// transition is the pending change for one cell during a step
type transition uint8

const (
	keep transition = iota
	die
	birth
)

// Grid is a fixed-size toroidal board of cells stored row-major
type Grid struct {
	width   int
	height  int
	cells   []Cell
	workers int

	pending []transition
	history []string // Recent grid hashes for cycle detection
}

// NewGrid creates a dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(errors.Errorf("[NewGrid] dimensions must be positive, got %dx%d", width, height))
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		workers: 1,
	}
}

// SetWorkers sets how many row bands Step plans concurrently; values below one are treated as one
func (g *Grid) SetWorkers(n int) {
	g.workers = max(1, n)
}

// Width returns the width of the grid
func (g *Grid) Width() int { return g.width }

// Height returns the height of the grid
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells in the grid
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns a copy of all cells in index order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// RowColAsIdx wraps row and col onto the torus and linearizes them
func (g *Grid) RowColAsIdx(row, col int) int {
	return wrap(row, g.height)*g.width + wrap(col, g.width)
}

// Neighbors returns the 8 wrapped neighbors of row, col.
// Order: south, south-east, south-west, north, north-east, north-west, west, east.
func (g *Grid) Neighbors(row, col int) [8]Cell {
	return [8]Cell{
		g.cells[g.RowColAsIdx(row+1, col)],
		g.cells[g.RowColAsIdx(row+1, col+1)],
		g.cells[g.RowColAsIdx(row+1, col-1)],
		g.cells[g.RowColAsIdx(row-1, col)],
		g.cells[g.RowColAsIdx(row-1, col+1)],
		g.cells[g.RowColAsIdx(row-1, col-1)],
		g.cells[g.RowColAsIdx(row, col-1)],
		g.cells[g.RowColAsIdx(row, col+1)],
	}
}

// Step advances the grid by one generation.
// Every transition is planned against the unmodified grid before any is applied.
func (g *Grid) Step() {
	if len(g.pending) != len(g.cells) {
		g.pending = make([]transition, len(g.cells))
	}

	if g.workers <= 1 {
		g.planRows(0, g.height)
	} else {
		g.planParallel()
	}

	for idx, t := range g.pending {
		switch t {
		case die:
			g.cells[idx].SetDead()
		case birth:
			g.cells[idx].SetAlive()
		}
	}
}

// planParallel plans transitions across row bands. Bands only write their own pending slots.
func (g *Grid) planParallel() {
	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.planRows(startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait()
}

func (g *Grid) planRows(startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.width {
			var (
				idx   = row*g.width + col
				alive = g.cells[idx].IsAlive()
				next  = rules.ApplyConwayRules(liveCount(g.Neighbors(row, col)), alive)
			)

			switch {
			case alive && !next:
				g.pending[idx] = die
			case !alive && next:
				g.pending[idx] = birth
			default:
				g.pending[idx] = keep
			}
		}
	}
}

// RandomMutate sets every cell alive or dead with an independent fair coin flip
func (g *Grid) RandomMutate() {
	for i := range g.cells {
		if rand.IntN(2) == 1 {
			g.cells[i].SetAlive()
		} else {
			g.cells[i].SetDead()
		}
	}
	g.history = nil
}

// Reset kills every cell
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].SetDead()
	}
	g.history = nil
}

// ToggleCell flips the cell at idx. An out of range idx means the caller and
// the grid disagree about its size, so it panics.
func (g *Grid) ToggleCell(idx int) {
	if idx < 0 || idx >= len(g.cells) {
		panic(errors.Errorf("[ToggleCell] index %d out of range [0, %d)", idx, len(g.cells)))
	}
	g.cells[idx].Toggle()
	g.history = nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c.IsAlive() {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the latest recorded state repeats one of the three
// recorded before it, which covers still lifes and period 2 and 3 oscillators
func (g *Grid) IsStagnant() bool {
	n := len(g.history)
	if n < 2 {
		return false
	}

	latest := g.history[n-1]
	for _, h := range g.history[max(0, n-4) : n-1] {
		if h == latest {
			return true
		}
	}
	return false
}

// wrap maps coord onto [0, bound). For the -1..bound range used by neighbor
// offsets this adds or subtracts bound exactly once.
func wrap(coord, bound int) int {
	coord %= bound
	if coord < 0 {
		coord += bound
	}
	return coord
}
