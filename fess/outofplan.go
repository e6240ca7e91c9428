package fess

// OutOfPlanAdvisor computes feature F4: the number of boxes standing
// on squares the packing plan still needs to traverse to pack the
// remaining targets, excluding the plan's already-packed targets
// (§4.G). It is a soft feature, not a deadlock test.
type OutOfPlanAdvisor struct {
	packing *PackingAdvisor
}

// NewOutOfPlanAdvisor builds the advisor on top of an already-built
// packing plan.
func NewOutOfPlanAdvisor(packing *PackingAdvisor) *OutOfPlanAdvisor {
	return &OutOfPlanAdvisor{packing: packing}
}

// Project computes F4(s).
func (o *OutOfPlanAdvisor) Project(s State) int {
	prefix := o.packing.Project(s)
	critical := o.packing.CriticalSquares(prefix)
	count := 0
	for _, box := range s.Boxes {
		if critical[box] {
			count++
		}
	}
	return count
}
