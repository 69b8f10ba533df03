//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/gui"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	cfg, err := utils.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	grid := model.NewGrid(cfg.Width, cfg.Height)
	grid.SetWorkers(cfg.Workers)
	session := game.NewSession(grid, game.WithLogger(log.New(os.Stderr, "[life] ", log.LstdFlags)))

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err = ebiten.RunGame(gui.New(session, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
