package game

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func newBlinkerSession(t *testing.T) *Session {
	t.Helper()
	g := model.NewGrid(5, 5)
	for _, col := range []int{1, 2, 3} {
		g.ToggleCell(g.RowColAsIdx(2, col))
	}
	return NewSession(g)
}

func TestApplyReportsChanges(t *testing.T) {
	tests := []struct {
		name    string
		running bool
		cmd     Command
		changed bool
		active  bool
	}{
		{name: "start while paused", cmd: Command{Kind: Start}, changed: false, active: true},
		{name: "start while running", running: true, cmd: Command{Kind: Start}, changed: false, active: true},
		{name: "stop while running", running: true, cmd: Command{Kind: Stop}, changed: false, active: false},
		{name: "stop while paused", cmd: Command{Kind: Stop}, changed: false, active: false},
		{name: "step while paused", cmd: Command{Kind: Step}, changed: true, active: false},
		{name: "step while running", running: true, cmd: Command{Kind: Step}, changed: true, active: true},
		{name: "tick while paused", cmd: Command{Kind: Tick}, changed: false, active: false},
		{name: "tick while running", running: true, cmd: Command{Kind: Tick}, changed: true, active: true},
		{name: "random", cmd: Command{Kind: Random}, changed: true, active: false},
		{name: "random while running", running: true, cmd: Command{Kind: Random}, changed: true, active: true},
		{name: "reset", cmd: Command{Kind: Reset}, changed: true, active: false},
		{name: "toggle", cmd: ToggleCellAt(0), changed: true, active: false},
		{name: "toggle while running", running: true, cmd: ToggleCellAt(24), changed: true, active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newBlinkerSession(t)
			if tt.running {
				s.Apply(Command{Kind: Start})
			}

			if got := s.Apply(tt.cmd); got != tt.changed {
				t.Fatalf("Apply(%s) = %v, want %v", tt.cmd, got, tt.changed)
			}
			if got := s.Active(); got != tt.active {
				t.Fatalf("Active() = %v, want %v", got, tt.active)
			}
		})
	}
}

func TestTickWhilePausedLeavesGrid(t *testing.T) {
	s := newBlinkerSession(t)
	before := s.Snapshot()

	for range 5 {
		s.Apply(Command{Kind: Tick})
	}

	after := s.Snapshot()
	for i := range before.Cells {
		if before.Cells[i] != after.Cells[i] {
			t.Fatalf("cell %d changed while paused", i)
		}
	}
	if after.Generation != 0 {
		t.Fatalf("generation advanced to %d while paused", after.Generation)
	}
}

func TestTickWhileRunningStepsOnce(t *testing.T) {
	s := newBlinkerSession(t)
	s.Apply(Command{Kind: Start})
	s.Apply(Command{Kind: Tick})

	snap := s.Snapshot()
	if snap.Generation != 1 {
		t.Fatalf("generation = %d, want 1", snap.Generation)
	}
	// One step turns the horizontal blinker vertical.
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !snap.Alive(rc[0], rc[1]) {
			t.Fatalf("expected (%d,%d) alive after one tick", rc[0], rc[1])
		}
	}
	if snap.Alive(2, 1) || snap.Alive(2, 3) {
		t.Fatal("horizontal arms survived a tick")
	}

	s.Apply(Command{Kind: Stop})
	s.Apply(Command{Kind: Tick})
	if got := s.Snapshot().Generation; got != 1 {
		t.Fatalf("tick after stop advanced generation to %d", got)
	}
}

func TestResetAndRandom(t *testing.T) {
	s := NewSession(model.NewGrid(53, 40))

	s.Apply(Command{Kind: Random})
	snap := s.Snapshot()
	if snap.Population == 0 || snap.Population == len(snap.Cells) {
		t.Fatalf("random fill produced population %d of %d", snap.Population, len(snap.Cells))
	}
	if snap.Width != 53 || snap.Height != 40 || len(snap.Cells) != 53*40 {
		t.Fatalf("unexpected snapshot layout %dx%d with %d cells", snap.Width, snap.Height, len(snap.Cells))
	}

	s.Apply(Command{Kind: Step})
	s.Apply(Command{Kind: Reset})
	snap = s.Snapshot()
	if snap.Population != 0 {
		t.Fatalf("population after reset = %d", snap.Population)
	}
	if snap.Generation != 0 {
		t.Fatalf("generation after reset = %d", snap.Generation)
	}
}

func TestToggleOutOfRangePanics(t *testing.T) {
	s := newBlinkerSession(t)
	if s.Contains(s.Len()) || !s.Contains(0) {
		t.Fatal("Contains disagrees with grid bounds")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out of range toggle")
		}
	}()
	s.Apply(ToggleCellAt(s.Len()))
}

func TestSessionLogsRunStateChanges(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(model.NewGrid(3, 3), WithLogger(log.New(&buf, "", 0)))

	for _, k := range []Kind{Random, Start, Step, Tick, Stop, Reset} {
		s.Apply(Command{Kind: k})
	}
	s.Apply(ToggleCellAt(4))

	want := "Random\nStart\nStop\nReset\n"
	if buf.String() != want {
		t.Fatalf("log output %q, want %q", buf.String(), want)
	}
}

func TestConcurrentApplyIsSerialized(t *testing.T) {
	s := NewSession(model.NewGrid(20, 20))
	s.Apply(Command{Kind: Start})

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				s.Apply(Command{Kind: Tick})
				s.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Generation; got != 200 {
		t.Fatalf("generation = %d, want 200", got)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{in: "random", want: Command{Kind: Random}},
		{in: "START", want: Command{Kind: Start}},
		{in: " step ", want: Command{Kind: Step}},
		{in: "reset", want: Command{Kind: Reset}},
		{in: "stop", want: Command{Kind: Stop}},
		{in: "tick", want: Command{Kind: Tick}},
		{in: "toggle 42", want: ToggleCellAt(42)},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if again, err := ParseCommand(got.String()); err != nil || again != got {
			t.Fatalf("ParseCommand(%q) did not read back %v", got.String(), got)
		}
	}

	for _, bad := range []string{"", "jump", "toggle", "toggle x", "toggle -1", "step 3"} {
		if _, err := ParseCommand(bad); err == nil {
			t.Fatalf("ParseCommand(%q) succeeded", bad)
		} else if !strings.Contains(err.Error(), "[ParseCommand]") {
			t.Fatalf("ParseCommand(%q) error %q missing context", bad, err)
		}
	}
}
