package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a command accepted by a Session
type Kind uint8

const (
	Random Kind = iota
	Start
	Step
	Reset
	Stop
	ToggleCell
	Tick
)

var kindNames = map[Kind]string{
	Random:     "random",
	Start:      "start",
	Step:       "step",
	Reset:      "reset",
	Stop:       "stop",
	ToggleCell: "toggle",
	Tick:       "tick",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Command is a single request to a Session. Index is only meaningful for ToggleCell.
type Command struct {
	Kind  Kind
	Index int
}

// ToggleCellAt returns the command that flips the cell at idx
func ToggleCellAt(idx int) Command {
	return Command{Kind: ToggleCell, Index: idx}
}

func (c Command) String() string {
	if c.Kind == ToggleCell {
		return fmt.Sprintf("%s %d", c.Kind, c.Index)
	}
	return c.Kind.String()
}

// ParseCommand reads a command in the form produced by Command.String
func ParseCommand(s string) (Command, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Command{}, errors.New("[ParseCommand] empty command")
	}

	for kind, name := range kindNames {
		if fields[0] != name {
			continue
		}
		if kind != ToggleCell {
			if len(fields) != 1 {
				return Command{}, errors.Errorf("[ParseCommand] %q takes no arguments", name)
			}
			return Command{Kind: kind}, nil
		}
		if len(fields) != 2 {
			return Command{}, errors.Errorf("[ParseCommand] %q needs exactly one cell index", name)
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, errors.Wrapf(err, "[ParseCommand] invalid cell index: %+v", fields[1])
		}
		if idx < 0 {
			return Command{}, errors.Errorf("[ParseCommand] negative cell index: %d", idx)
		}
		return ToggleCellAt(idx), nil
	}

	return Command{}, errors.Errorf("[ParseCommand] unknown command: %+v", fields[0])
}
