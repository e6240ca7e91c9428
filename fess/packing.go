package fess

import (
	"fmt"

	"github.com/bertbaron/fess-sokoban/level"
)

// PlanStep is one entry of the packing plan (§4.D): Target is the
// square packed at this step; BoxFrom and Behind are the squares the
// final forward push traverses (the box's position immediately before
// the push, and the square the player must stand on to make it) —
// these feed the out-of-plan advisor's plan-critical square set (§4.G).
type PlanStep struct {
	Target  level.Square
	BoxFrom level.Square
	Behind  level.Square
}

// PackingAdvisor computes feature F1 from a packing plan built once
// per Level by retrograde analysis from the goal state (§4.D).
type PackingAdvisor struct {
	lvl  *level.Level
	plan []PlanStep
	// rank[target] is its index in plan, i.e. the packing order.
	rank map[level.Square]int
}

// NewPackingAdvisor runs the retrograde analysis and returns an error
// if some targets can never be unpacked (§4.D "Failure" / §7
// "unsolvable retrograde plan").
func NewPackingAdvisor(lvl *level.Level) (*PackingAdvisor, error) {
	plan, err := buildPackingPlan(lvl)
	if err != nil {
		return nil, err
	}
	rank := make(map[level.Square]int, len(plan))
	for i, step := range plan {
		rank[step.Target] = i
	}
	return &PackingAdvisor{lvl: lvl, plan: plan, rank: rank}, nil
}

// Plan returns the ordered packing plan.
func (p *PackingAdvisor) Plan() []PlanStep {
	return p.plan
}

// Project computes F1(S): the largest prefix length k such that
// targets plan[0..k) all hold boxes in s.
func (p *PackingAdvisor) Project(s State) int {
	k := 0
	for _, step := range p.plan {
		if !s.Boxes.Contains(step.Target) {
			break
		}
		k++
	}
	return k
}

// CriticalSquares returns the union of BoxFrom/Behind squares for plan
// steps beyond prefix k (the not-yet-packed suffix), excluding any
// square that is itself a plan target within the prefix — the set
// §4.G calls "plan-critical".
func (p *PackingAdvisor) CriticalSquares(prefix int) map[level.Square]bool {
	critical := make(map[level.Square]bool)
	packed := make(map[level.Square]bool, prefix)
	for i := 0; i < prefix && i < len(p.plan); i++ {
		packed[p.plan[i].Target] = true
	}
	for i := prefix; i < len(p.plan); i++ {
		step := p.plan[i]
		if !packed[step.BoxFrom] {
			critical[step.BoxFrom] = true
		}
		if !packed[step.Behind] {
			critical[step.Behind] = true
		}
	}
	return critical
}

// retrogradeCandidate is one legal "unpush" of a box currently sitting
// on a remaining target.
type retrogradeCandidate struct {
	target    level.Square
	dir       Direction
	boxFrom   level.Square // where the box lands after being pulled back
	behind    level.Square // where the player stands to redo the push
	component int          // connectivity of free space after removal, for tie-breaking
}

// buildPackingPlan runs the retrograde analysis of §4.D: starting from
// the goal state (every target holds a box), repeatedly remove a box
// from a target such that the removal corresponds to reversing a
// legal forward push — the square the box retreats to, and the square
// behind it where the player would stand to push it forward again,
// must both be free. The reverse of the removal order is the packing
// plan. Ties are broken by the connectivity the removal leaves behind,
// then lexicographically — design note (iii).
func buildPackingPlan(lvl *level.Level) ([]PlanStep, error) {
	targets := append([]level.Square(nil), lvl.Targets()...)
	remaining := newBoxSet(targets)

	var removalOrder []retrogradeCandidate
	for len(remaining) > 0 {
		candidates := legalRetrogradeMoves(lvl, remaining)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("unsolvable_plan: retrograde analysis stuck with %d target(s) remaining", len(remaining))
		}
		best := pickBest(candidates)
		removalOrder = append(removalOrder, best)
		remaining = remaining.replaceRemoved(best.target)
	}

	plan := make([]PlanStep, len(removalOrder))
	for i, c := range removalOrder {
		plan[len(removalOrder)-1-i] = PlanStep{Target: c.target, BoxFrom: c.boxFrom, Behind: c.behind}
	}
	return plan, nil
}

// replaceRemoved returns a copy of bs without sq.
func (bs BoxSet) replaceRemoved(sq level.Square) BoxSet {
	next := make(BoxSet, 0, len(bs)-1)
	for _, b := range bs {
		if b != sq {
			next = append(next, b)
		}
	}
	return next
}

func legalRetrogradeMoves(lvl *level.Level, remaining BoxSet) []retrogradeCandidate {
	var candidates []retrogradeCandidate
	for _, target := range remaining {
		for dir := Direction(0); dir < 4; dir++ {
			d := dir.delta()
			boxFrom := level.Square{X: target.X - d.X, Y: target.Y - d.Y}
			behind := level.Square{X: target.X - 2*d.X, Y: target.Y - 2*d.Y}
			if lvl.IsWall(boxFrom.X, boxFrom.Y) || remaining.Contains(boxFrom) {
				continue
			}
			if lvl.IsWall(behind.X, behind.Y) || remaining.Contains(behind) {
				continue
			}
			after := remaining.replaceRemoved(target)
			candidates = append(candidates, retrogradeCandidate{
				target:    target,
				dir:       dir,
				boxFrom:   boxFrom,
				behind:    behind,
				component: freeComponentCount(lvl, after),
			})
		}
	}
	return candidates
}

// pickBest applies the tie-break of design note (iii): greatest
// connectivity first, then lexicographic by target then direction.
func pickBest(candidates []retrogradeCandidate) retrogradeCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func better(a, b retrogradeCandidate) bool {
	if a.component != b.component {
		return a.component > b.component
	}
	if a.target != b.target {
		return a.target.Less(b.target)
	}
	return a.dir < b.dir
}

// freeComponentCount counts connected components of non-wall squares
// that are not occupied by a box in boxes — the same topology the
// connectivity advisor (§4.E) projects, reused here for the
// retrograde plan's tie-break.
func freeComponentCount(lvl *level.Level, boxes BoxSet) int {
	return countFreeComponents(lvl, boxes)
}
