package fess

import "github.com/bertbaron/fess-sokoban/level"

// assignWeight scores a candidate move in {0, 1} by advisor consensus
// (§4.K). Each advisor either endorses the move, vetoes it, or stays
// neutral; weight is 0 if at least one advisor endorses and none
// vetoes, 1 otherwise. The engine prefers weight-0 moves but still
// tries weight-1 moves once a cell runs dry of them, so it stays
// complete within the exploration budget.
func assignWeight(adv *Advisors, parent, child State, move Move) int {
	f1p, f1c := adv.Packing.Project(parent), adv.Packing.Project(child)
	f2p, f2c := adv.Connectivity.Project(parent), adv.Connectivity.Project(child)
	f4p, f4c := adv.OutOfPlan.Project(parent), adv.OutOfPlan.Project(child)

	dest := move.BoxTo()
	packedTarget := f1c > f1p

	connEndorse := f2c <= f2p
	connVeto := f2c > f2p

	roomVeto := adv.Room.linking[dest] && !packedTarget
	roomEndorse := !roomVeto

	outEndorse := f4c <= f4p
	outVeto := f4c > f4p

	critical := adv.Packing.CriticalSquares(f1p)
	moveIrrelevant := !critical[dest] && !isPlanTarget(adv, dest, f1p)
	packingVeto := f1c < f1p
	packingEndorse := packedTarget || (moveIrrelevant && !connVeto && !roomVeto && !outVeto)

	anyEndorse := packingEndorse || connEndorse || roomEndorse || outEndorse
	anyVeto := packingVeto || connVeto || roomVeto || outVeto

	if anyEndorse && !anyVeto {
		return 0
	}
	return 1
}

// isPlanTarget reports whether sq is one of the plan's targets within
// the first prefix+1 steps (already packed, or the next target to
// pack) — either way "relevant to the current plan prefix" for the
// packing advisor's endorsement rule.
func isPlanTarget(adv *Advisors, sq level.Square, prefix int) bool {
	plan := adv.Packing.Plan()
	for i := 0; i <= prefix && i < len(plan); i++ {
		if plan[i].Target == sq {
			return true
		}
	}
	return false
}
