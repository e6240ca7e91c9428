package fess

// FeatureCell buckets every TreeNode whose state projects to the same
// FeatureVector (§3). Nodes are plain pointers into the Tree's arena —
// the cell does not own them (design note 9).
type FeatureCell struct {
	Vector FeatureVector
	Nodes  []*TreeNode
}

// FeatureIndex is the sparse FeatureVector -> FeatureCell map of §4.H,
// with a round-robin cursor over the list of cells. The cell list is
// an ordered slice with an integer cursor that wraps modulo its
// length; new cells are appended at the end so the cursor keeps
// working even as the set of cells grows mid-search (design note:
// "generators/iterators").
type FeatureIndex struct {
	byVector map[FeatureVector]*FeatureCell
	order    []*FeatureCell
	cursor   int
}

// NewFeatureIndex creates an empty index.
func NewFeatureIndex() *FeatureIndex {
	return &FeatureIndex{byVector: make(map[FeatureVector]*FeatureCell)}
}

// Insert projects node's state with adv and files it into the
// matching cell, creating the cell if this is its first member.
func (idx *FeatureIndex) Insert(adv *Advisors, node *TreeNode) {
	vec := adv.Project(node.State)
	cell, ok := idx.byVector[vec]
	if !ok {
		cell = &FeatureCell{Vector: vec}
		idx.byVector[vec] = cell
		idx.order = append(idx.order, cell)
	}
	cell.Nodes = append(cell.Nodes, node)
}

// NextCell returns the next cell in round-robin order, advancing the
// cursor, or (nil, false) if the index holds no cells at all.
func (idx *FeatureIndex) NextCell() (*FeatureCell, bool) {
	if len(idx.order) == 0 {
		return nil, false
	}
	cell := idx.order[idx.cursor%len(idx.order)]
	idx.cursor++
	return cell, true
}

// CellCount returns the number of distinct feature-vector cells.
func (idx *FeatureIndex) CellCount() int {
	return len(idx.order)
}
