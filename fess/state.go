// Package fess implements the Feature Space Search engine of
// Shoham & Schaeffer [2020]: a best-first search over concrete Sokoban
// states, guided by a projection of each state into a small discrete
// feature space.
package fess

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bertbaron/fess-sokoban/level"
)

// BoxSet is a sorted, deduplicated set of box squares. Sorted order
// gives an order-independent identity (for Key) and lets the move
// generator binary-search box occupancy the way bertbaron's sokoban
// example does in its Expand/valueOf helpers.
type BoxSet []level.Square

func newBoxSet(squares []level.Square) BoxSet {
	bs := make(BoxSet, len(squares))
	copy(bs, squares)
	sort.Slice(bs, func(i, j int) bool { return bs[i].Less(bs[j]) })
	return bs
}

// Contains reports whether sq holds a box.
func (bs BoxSet) Contains(sq level.Square) bool {
	return bs.indexOf(sq) >= 0
}

func (bs BoxSet) indexOf(sq level.Square) int {
	i := sort.Search(len(bs), func(i int) bool { return !bs[i].Less(sq) })
	if i < len(bs) && bs[i] == sq {
		return i
	}
	return -1
}

// replace returns a new BoxSet with the box at "from" moved to "to",
// re-sorted. Used by the move generator to apply a push.
func (bs BoxSet) replace(from, to level.Square) BoxSet {
	next := make(BoxSet, len(bs))
	copy(next, bs)
	idx := next.indexOf(from)
	next[idx] = to
	sort.Slice(next, func(i, j int) bool { return next[i].Less(next[j]) })
	return next
}

// State is a concrete node value: player position plus the immutable
// set of box positions. The player field always holds the canonical
// representative of the player's reachable region (§3), so that two
// states with the same boxes and player-reachability collapse into
// the same Key.
type State struct {
	Player level.Square
	Boxes  BoxSet
}

// canonicalize replaces player with the lexicographically smallest
// square reachable from it under boxes, per §3/§4.B.
func canonicalize(lvl *level.Level, player level.Square, boxes BoxSet) State {
	region := reachableRegion(lvl, player, boxes)
	min := player
	for sq := range region {
		if sq.Less(min) {
			min = sq
		}
	}
	return State{Player: min, Boxes: boxes}
}

// Key is the canonical identity of a state: canonical player plus the
// sorted tuple of box squares, per §3. Two states with equal keys are
// the same search-tree node.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(8 + 8*len(s.Boxes))
	b.WriteString(strconv.Itoa(s.Player.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Player.Y))
	for _, sq := range s.Boxes {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(sq.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(sq.Y))
	}
	return b.String()
}

// IsGoal reports whether every target square in lvl holds a box.
func (s State) IsGoal(lvl *level.Level) bool {
	for _, t := range lvl.Targets() {
		if !s.Boxes.Contains(t) {
			return false
		}
	}
	return true
}

// InitialState builds the canonical root state of lvl.
func InitialState(lvl *level.Level) State {
	boxes := newBoxSet(lvl.BoxesStart())
	return canonicalize(lvl, lvl.PlayerStart(), boxes)
}
