// Package gui renders a game session in a window with ebiten. The window
// itself needs the ebiten build tag; the pixel helpers here build everywhere.
package gui

import (
	"image/color"
	"time"
)

// fillCellsRGBA converts cell states into RGBA pixels in buf, one pixel per cell
func fillCellsRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// cellAt maps a screen position to a cell index, or -1 when it falls outside the grid
func cellAt(x, y, scale, width, height int) int {
	if x < 0 || y < 0 || scale <= 0 {
		return -1
	}
	col, row := x/scale, y/scale
	if col >= width || row >= height {
		return -1
	}
	return row*width + col
}

// fixedStep fires at most once per call after interval has elapsed. Frames
// that arrive late drop the missed ticks rather than catching up.
type fixedStep struct {
	interval time.Duration
	last     time.Time
}

func (f *fixedStep) due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) < f.interval {
		return false
	}
	f.last = now
	return true
}
