package fess

import "github.com/bertbaron/fess-sokoban/level"

// moveKey identifies a Move independent of its weight, for the
// per-parent "already expanded" set.
type moveKey struct {
	BoxFrom   level.Square
	Direction Direction
}

func keyOf(m Move) moveKey {
	return moveKey{BoxFrom: m.BoxFrom, Direction: m.Direction}
}

// TreeNode holds a State, the Move that produced it (nil for the
// root), a reference to its parent, and the accumulated weight along
// the path from the root (§3). The tree is the sole owner of nodes —
// an arena indexed by insertion order — so the feature index can hold
// plain pointers into it without an ownership cycle (design note 9).
type TreeNode struct {
	State             State
	Move              *Move
	Parent            *TreeNode
	AccumulatedWeight int

	expanded map[moveKey]bool
}

// IsExpanded reports whether m has already been tried from this node.
func (n *TreeNode) IsExpanded(m Move) bool {
	return n.expanded[keyOf(m)]
}

// MarkExpanded records that m has been tried from this node; a Move
// is expanded at most once per parent (§8 invariant).
func (n *TreeNode) MarkExpanded(m Move) {
	n.expanded[keyOf(m)] = true
}

// Path returns the moves from the root to n, in play order.
func (n *TreeNode) Path() []Move {
	var moves []Move
	for cur := n; cur != nil && cur.Move != nil; cur = cur.Parent {
		moves = append([]Move{*cur.Move}, moves...)
	}
	return moves
}

// Tree is an append-only node pool keyed by canonical state (§4.I).
// The key→node table is the sole duplicate filter: the search never
// revisits an equivalent state.
type Tree struct {
	nodes []*TreeNode
	byKey map[string]*TreeNode
}

// NewTree creates a tree with a single root node at zero accumulated
// weight (§3 invariant: the root has zero accumulated weight).
func NewTree(root State) (*Tree, *TreeNode) {
	n := &TreeNode{State: root, expanded: make(map[moveKey]bool)}
	t := &Tree{
		nodes: []*TreeNode{n},
		byKey: map[string]*TreeNode{root.Key(): n},
	}
	return t, n
}

// TryAdd inserts a new node for state as a child of parent via move,
// unless an equal state (by canonical key) already exists, in which
// case it returns (nil, false).
func (t *Tree) TryAdd(state State, parent *TreeNode, move Move, weight int) (*TreeNode, bool) {
	key := state.Key()
	if _, exists := t.byKey[key]; exists {
		return nil, false
	}
	m := move
	n := &TreeNode{
		State:             state,
		Move:              &m,
		Parent:            parent,
		AccumulatedWeight: parent.AccumulatedWeight + weight,
		expanded:          make(map[moveKey]bool),
	}
	t.nodes = append(t.nodes, n)
	t.byKey[key] = n
	return n, true
}

// Size returns the number of nodes created so far.
func (t *Tree) Size() int {
	return len(t.nodes)
}
