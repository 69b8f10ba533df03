package model

import (
	"bufio"
	"io"
	"os"
)

const (
	// AliveGlyph is drawn for a live cell, two columns wide to keep cells square
	AliveGlyph = "██"
	// DeadGlyph is drawn for a dead cell
	DeadGlyph = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws row-major cell states as text
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// DisplayCells renders row-major cell states width cells per row
func (r *TerminalRenderer) DisplayCells(cells []bool, width int) error {
	w := bufio.NewWriter(r.out)
	for i, alive := range cells {
		if alive {
			w.WriteString(AliveGlyph)
		} else {
			w.WriteString(DeadGlyph)
		}
		if (i+1)%width == 0 {
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreen)
	return err
}
