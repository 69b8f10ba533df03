package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/tui"
	"github.com/sheikhrachel/go-life/utils"
)

const logPrefix = "[life] "

// loadConfig reads config.json (or -config) and applies command line overrides
func loadConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	return utils.FromFlags(fs, args)
}

// initializeSession sets up the grid and the session driving it
func initializeSession(config utils.Config, logger *log.Logger) *game.Session {
	grid := model.NewGrid(config.Width, config.Height)
	grid.SetWorkers(config.Workers)
	return game.NewSession(grid, game.WithLogger(logger))
}

// runInteractive shows the terminal UI. Logs go to config.LogFile so they do
// not tear the frame.
func runInteractive(ctx context.Context, config utils.Config) error {
	f, err := tea.LogToFile(config.LogFile, logPrefix)
	if err != nil {
		return errors.Wrapf(err, "[runInteractive] failed to open log file: %+v", config.LogFile)
	}
	defer f.Close()

	return tui.Run(ctx, initializeSession(config, log.Default()), config)
}

// runHeadless seeds a random grid, starts it and prints a frame per tick until
// ctx is cancelled or a stop condition is met. Lines read from in are applied
// as commands between ticks.
func runHeadless(ctx context.Context, config utils.Config, in io.Reader, out, errOut io.Writer) error {
	var (
		logger   = log.New(errOut, logPrefix, log.LstdFlags)
		session  = initializeSession(config, logger)
		renderer = model.NewTerminalRenderer(out)
		stats    = utils.NewStats()
	)

	displayGameInfo(out, config)
	session.Apply(game.Command{Kind: game.Random})
	session.Apply(game.Command{Kind: game.Start})

	render := func() (bool, error) {
		snap := session.Snapshot()
		stats.Update(snap.Generation, snap.Population, time.Now())

		if err := renderer.Clear(); err != nil {
			return false, errors.Wrap(err, "[runHeadless] failed to clear screen")
		}
		displayGameStatus(out, snap, stats)
		if err := renderer.DisplayCells(snap.Cells, snap.Width); err != nil {
			return false, errors.Wrap(err, "[runHeadless] failed to draw grid")
		}

		done, reason := checkStopConditions(snap, config)
		if done {
			logger.Printf("Stopping after %d generations: %s", snap.Generation, reason)
		}
		return done, nil
	}
	if done, err := render(); done || err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(runCtx)
		ticks     = make(chan struct{}, 1)
		commands  = make(chan game.Command)
	)

	// The reader is not part of eg: a Scan blocked on a terminal cannot be
	// interrupted, so runHeadless returns without waiting for it. It exits on
	// the next line or EOF, or stays parked on stdin until the process exits.
	go readCommands(egCtx, in, session, logger, commands)

	// Timer source. A tick that finds the previous one still pending is dropped.
	eg.Go(func() error {
		ticker := time.NewTicker(config.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case <-ticker.C:
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	})

	// Dispatcher. The only goroutine that applies commands.
	eg.Go(func() error {
		defer cancel()
		for {
			var cmd game.Command
			select {
			case <-egCtx.Done():
				return nil
			case <-ticks:
				cmd = game.Command{Kind: game.Tick}
			case c, ok := <-commands:
				if !ok {
					commands = nil
					continue
				}
				cmd = c
			}

			if !session.Apply(cmd) {
				continue
			}
			done, err := render()
			if err != nil || done {
				return err
			}
		}
	})

	return eg.Wait()
}

// readCommands parses one command per line from in. Lines that do not parse
// or name a cell outside the grid are logged and skipped.
func readCommands(ctx context.Context, in io.Reader, session *game.Session, logger *log.Logger, commands chan<- game.Command) {
	defer close(commands)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		cmd, err := game.ParseCommand(scanner.Text())
		if err != nil {
			logger.Println(err)
			continue
		}
		if cmd.Kind == game.ToggleCell && !session.Contains(cmd.Index) {
			logger.Printf("[readCommands] cell %d outside grid of %d cells", cmd.Index, session.Len())
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Println(errors.Wrap(err, "[readCommands] failed to read input"))
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config) {
	fmt.Fprintf(out, "Grid: %dx%d | Tick: %v | Workers: %d\n",
		config.Width, config.Height, config.TickInterval, config.Workers)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, snap game.Snapshot, stats *utils.Stats) {
	var (
		density = float64(snap.Population) / float64(len(snap.Cells)) * 100
		status  = "Paused"
	)
	switch {
	case snap.Population == 0:
		status = "Extinct"
	case snap.Stagnant:
		status = "Stagnant"
	case snap.Active:
		status = "Running"
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		snap.Generation, snap.Population, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// checkStopConditions determines if the headless run should end
func checkStopConditions(snap game.Snapshot, config utils.Config) (bool, string) {
	if snap.Population == 0 {
		return true, "extinction"
	}
	if config.MaxGenerations > 0 && snap.Generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
