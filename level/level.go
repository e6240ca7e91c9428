// Package level holds the static board model consumed by the fess
// solver: walls, targets, dimensions and the puzzle's initial state.
package level

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// cellFlag marks the static properties of a square, mirroring the
// bitmask world representation bertbaron's sokoban example keeps
// alongside the player/box overlay.
type cellFlag uint8

const (
	flagWall   cellFlag = 1 << iota
	flagTarget
)

// Square is a zero-based board coordinate.
type Square struct {
	X, Y int
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Add returns the square offset by dx, dy.
func (s Square) Add(dx, dy int) Square {
	return Square{s.X + dx, s.Y + dy}
}

// Less orders squares row-major, used for the canonical box-set key.
func (s Square) Less(o Square) bool {
	if s.Y != o.Y {
		return s.Y < o.Y
	}
	return s.X < o.X
}

// Level is the immutable static board of a Sokoban puzzle: walls,
// targets, dimensions, and the initial player/box placement. It is
// built once by Parse and never mutated afterward.
type Level struct {
	Width, Height int
	cells         []cellFlag
	targets       []Square
	playerStart   Square
	hasPlayer     bool
	boxesStart    []Square
}

// InBounds reports whether (x, y) lies on the board.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

func (l *Level) index(x, y int) int {
	return y*l.Width + x
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds squares count
// as walls so callers never need a separate bounds check before this one.
func (l *Level) IsWall(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	return l.cells[l.index(x, y)]&flagWall != 0
}

// IsTarget reports whether (x, y) is one of the level's targets.
func (l *Level) IsTarget(x, y int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	return l.cells[l.index(x, y)]&flagTarget != 0
}

// Targets returns the sorted list of target squares. The slice is
// shared and must not be mutated by callers.
func (l *Level) Targets() []Square {
	return l.targets
}

// PlayerStart returns the initial player square.
func (l *Level) PlayerStart() Square {
	return l.playerStart
}

// BoxesStart returns the sorted initial box squares. The slice is
// shared and must not be mutated by callers.
func (l *Level) BoxesStart() []Square {
	return l.boxesStart
}

// validate checks the invariants of §3: equal box/target counts, no
// box or player on a wall, exactly one player. Every violation is
// collected so a caller sees the whole picture in one error, the way
// agent.go in the alphabeth MCTS package aggregates teardown errors.
func (l *Level) validate() error {
	var errs *multierror.Error
	if len(l.boxesStart) != len(l.targets) {
		errs = multierror.Append(errs, fmt.Errorf("box count %d does not match target count %d", len(l.boxesStart), len(l.targets)))
	}
	if !l.hasPlayer {
		errs = multierror.Append(errs, fmt.Errorf("no player square found"))
	}
	for _, b := range l.boxesStart {
		if l.IsWall(b.X, b.Y) {
			errs = multierror.Append(errs, fmt.Errorf("box at %v sits on a wall", b))
		}
	}
	if l.IsWall(l.playerStart.X, l.playerStart.Y) {
		errs = multierror.Append(errs, fmt.Errorf("player at %v sits on a wall", l.playerStart))
	}
	seen := make(map[Square]bool, len(l.boxesStart))
	for _, b := range l.boxesStart {
		if seen[b] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate box at %v", b))
		}
		seen[b] = true
	}
	return errs.ErrorOrNil()
}

func sortSquares(sq []Square) {
	sort.Slice(sq, func(i, j int) bool { return sq[i].Less(sq[j]) })
}
