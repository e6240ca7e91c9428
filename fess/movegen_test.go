package fess

import (
	"testing"

	"github.com/bertbaron/fess-sokoban/level"
)

func TestGenerateMovesSingleLegalPush(t *testing.T) {
	lvl := mustParse(t, "#####\n#@$.#\n#####")
	s := InitialState(lvl)
	moves := generateMoves(lvl, s)
	if len(moves) != 1 {
		t.Fatalf("expected exactly one legal move, got %v", moves)
	}
	m := moves[0]
	if m.Direction != Right || m.BoxFrom != (level.Square{X: 2, Y: 1}) {
		t.Fatalf("unexpected move: %+v", m)
	}
	if m.BoxTo() != (level.Square{X: 3, Y: 1}) {
		t.Fatalf("BoxTo = %v, want (3,1)", m.BoxTo())
	}
}

func TestApplyMoveCanonicalizesResult(t *testing.T) {
	lvl := mustParse(t, "#####\n#@$.#\n#####")
	s := InitialState(lvl)
	moves := generateMoves(lvl, s)
	child := applyMove(lvl, s, moves[0])
	if !child.Boxes.Contains(level.Square{X: 3, Y: 1}) {
		t.Fatalf("box did not move to (3,1): %v", child.Boxes)
	}
	if child.Player != (level.Square{X: 1, Y: 1}) {
		t.Fatalf("player = %v, want canonical (1,1)", child.Player)
	}
}

func TestGenerateMovesOrderingIsDeterministic(t *testing.T) {
	// The box sits between a target above and open floor below, with a
	// bypass column to its right: both an up-push and a down-push are
	// legal, and §4.J requires them enumerated in a fixed up/right/down/
	// left order.
	lvl := mustParse(t, "#####\n#.  #\n#$  #\n#@  #\n#####")
	s := InitialState(lvl)
	a := generateMoves(lvl, s)
	b := generateMoves(lvl, s)
	if len(a) != 2 {
		t.Fatalf("expected 2 legal pushes, got %v", a)
	}
	if a[0].Direction != Up || a[1].Direction != Down {
		t.Fatalf("expected [up, down] order, got [%v, %v]", a[0].Direction, a[1].Direction)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move generation is not deterministic at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestIsCornerDeadlockPerpendicularWalls(t *testing.T) {
	lvl := mustParse(t, "#####\n#  @#\n#   #\n#####")
	if !isCornerDeadlock(lvl, level.Square{X: 1, Y: 1}) {
		t.Fatalf("expected (1,1) to be a corner deadlock")
	}
	if isCornerDeadlock(lvl, level.Square{X: 2, Y: 2}) {
		t.Fatalf("(2,2) touches only one wall, should not be a deadlock")
	}
}

func TestIsCornerDeadlockExemptOnTarget(t *testing.T) {
	lvl := mustParse(t, "#####\n#.  #\n# @$#\n#####")
	if isCornerDeadlock(lvl, level.Square{X: 1, Y: 1}) {
		t.Fatalf("a box sitting on its target is never a deadlock, even in a corner")
	}
}
