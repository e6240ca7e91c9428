package fess

import (
	"testing"

	"github.com/bertbaron/fess-sokoban/level"
)

// dumbbellLevel is two 2x2 rooms joined by a single width-1 tunnel cell
// at (3,1); row y=2 is walled off at x=3 so that cell is the only link.
const dumbbellLevel = "#######\n#@    #\n#  #  #\n#######"

func TestIsTunnelClassifiesLinkCellOnly(t *testing.T) {
	lvl := mustParse(t, dumbbellLevel)
	if !isTunnel(lvl, level.Square{X: 3, Y: 1}) {
		t.Fatalf("expected the single link cell (3,1) to be a tunnel")
	}
	for _, sq := range []level.Square{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		if isTunnel(lvl, sq) {
			t.Fatalf("room cell %v misclassified as a tunnel", sq)
		}
	}
}

func TestRoomAdvisorMarksOnlyTheLinkingTunnel(t *testing.T) {
	lvl := mustParse(t, dumbbellLevel)
	r := NewRoomAdvisor(lvl)
	if !r.linking[level.Square{X: 3, Y: 1}] {
		t.Fatalf("expected (3,1) to be a room-linking tunnel square")
	}
	if len(r.linking) != 1 {
		t.Fatalf("expected exactly one room-linking square, got %v", r.linking)
	}
}

func TestRoomAdvisorProjectCountsBoxesOnLinkingTunnels(t *testing.T) {
	lvl := mustParse(t, dumbbellLevel)
	r := NewRoomAdvisor(lvl)

	onTunnel := State{Player: level.Square{X: 1, Y: 1}, Boxes: newBoxSet([]level.Square{{X: 3, Y: 1}})}
	if got := r.Project(onTunnel); got != 1 {
		t.Fatalf("F3 = %d, want 1 with the box on the linking tunnel", got)
	}

	inRoom := State{Player: level.Square{X: 1, Y: 1}, Boxes: newBoxSet([]level.Square{{X: 2, Y: 2}})}
	if got := r.Project(inRoom); got != 0 {
		t.Fatalf("F3 = %d, want 0 with the box inside a room", got)
	}
}
