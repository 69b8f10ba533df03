package model

import "github.com/sheikhrachel/go-life/rules"

// Cell is a single grid position, either alive or dead. The zero value is dead.
type Cell struct {
	alive bool
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool { return c.alive }

// SetAlive marks the cell alive
func (c *Cell) SetAlive() { c.alive = true }

// SetDead marks the cell dead
func (c *Cell) SetDead() { c.alive = false }

// Toggle flips the cell state
func (c *Cell) Toggle() { c.alive = !c.alive }

// Alone reports whether fewer than two of the neighbors are alive
func Alone(neighbors [8]Cell) bool {
	return rules.Alone(liveCount(neighbors))
}

// Overpopulated reports whether more than three of the neighbors are alive
func Overpopulated(neighbors [8]Cell) bool {
	return rules.Overpopulated(liveCount(neighbors))
}

// CanBeRevived reports whether exactly three of the neighbors are alive
func CanBeRevived(neighbors [8]Cell) bool {
	return rules.CanBeRevived(liveCount(neighbors))
}

func liveCount(neighbors [8]Cell) (count int) {
	for _, n := range neighbors {
		if n.alive {
			count++
		}
	}
	return
}
