//go:build ebiten

package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

// keyCommands binds keys to session commands, checked in this order every frame
var keyCommands = []struct {
	key ebiten.Key
	cmd game.Command
}{
	{ebiten.KeyR, game.Command{Kind: game.Random}},
	{ebiten.KeyS, game.Command{Kind: game.Step}},
	{ebiten.KeyEnter, game.Command{Kind: game.Start}},
	{ebiten.KeySpace, game.Command{Kind: game.Stop}},
	{ebiten.KeyC, game.Command{Kind: game.Reset}},
}

// Game adapts a session to the ebiten.Game interface
type Game struct {
	session *game.Session
	timer   fixedStep
	scale   int

	img   *ebiten.Image
	buf   []byte
	snap  game.Snapshot
	dirty bool

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for session drawn at cfg.Scale pixels per cell
func New(session *game.Session, cfg utils.Config) *Game {
	snap := session.Snapshot()
	return &Game{
		session:  session,
		timer:    fixedStep{interval: cfg.TickInterval},
		scale:    cfg.Scale,
		img:      ebiten.NewImage(snap.Width, snap.Height),
		buf:      make([]byte, 4*len(snap.Cells)),
		snap:     snap,
		dirty:    true,
		onColor:  color.RGBA{R: 0x3c, G: 0xd0, B: 0x70, A: 0xff},
		offColor: color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff},
	}
}

// Update handles input and the tick timer
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range keyCommands {
		if inpututil.IsKeyJustPressed(b.key) {
			g.apply(b.cmd)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if idx := cellAt(x, y, g.scale, g.snap.Width, g.snap.Height); idx >= 0 {
			g.apply(game.ToggleCellAt(idx))
		}
	}

	if g.timer.due(time.Now()) {
		g.apply(game.Command{Kind: game.Tick})
	}
	return nil
}

func (g *Game) apply(cmd game.Command) {
	if g.session.Apply(cmd) {
		g.snap = g.session.Snapshot()
		g.dirty = true
	}
}

// Draw renders the current session state
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		fillCellsRGBA(g.buf, g.snap.Cells, g.onColor, g.offColor)
		g.img.WritePixels(g.buf)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.snap.Width * g.scale, g.snap.Height * g.scale
}
