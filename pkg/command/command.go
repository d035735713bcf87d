package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidCommand = errors.New("invalid command")

var movePattern = regexp.MustCompile(`^mov (\w+) \((\d+),(\d+)\)`)

// Move asks the receiver to move Unit to (X, Y).
type Move struct {
	Unit string
	X    int
	Y    int
}

func (m Move) String() string {
	return fmt.Sprintf("mov %s (%d,%d)", m.Unit, m.X, m.Y)
}

// Parse reads a move command such as "mov v1 (10,5)". Surrounding
// whitespace is ignored.
func Parse(s string) (Move, error) {
	match := movePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
	}

	x, err := strconv.Atoi(match[2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad x coordinate: %s", ErrInvalidCommand, err.Error())
	}
	y, err := strconv.Atoi(match[3])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad y coordinate: %s", ErrInvalidCommand, err.Error())
	}

	return Move{Unit: match[1], X: x, Y: y}, nil
}
