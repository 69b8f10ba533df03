//go:build ebiten

package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/game"
)

func TestKeyCommandsOrder(t *testing.T) {
	want := []struct {
		key  ebiten.Key
		kind game.Kind
	}{
		{ebiten.KeyR, game.Random},
		{ebiten.KeyS, game.Step},
		{ebiten.KeyEnter, game.Start},
		{ebiten.KeySpace, game.Stop},
		{ebiten.KeyC, game.Reset},
	}
	if len(keyCommands) != len(want) {
		t.Fatalf("%d key bindings, want %d", len(keyCommands), len(want))
	}
	// Random is applied before Start when both keys land in one frame.
	for i, w := range want {
		if keyCommands[i].key != w.key || keyCommands[i].cmd.Kind != w.kind {
			t.Fatalf("binding %d = %v -> %s, want %v -> %s",
				i, keyCommands[i].key, keyCommands[i].cmd, w.key, w.kind)
		}
	}
}
