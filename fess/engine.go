package fess

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/bertbaron/fess-sokoban/level"
)

// progressEveryCells bounds how often a caller-supplied progress
// callback may be invoked, per §5 ("at most once per N iterations").
const progressEveryCells = 1000

// ProgressFunc receives an immutable statistics snapshot. It must not
// mutate solver state and must return promptly (§5); a panic inside it
// is recovered and logged, never allowed to escape the engine (§7).
type ProgressFunc func(Statistics)

// Engine is the FESS search engine of §4.L. It owns the level, the
// search tree, the feature index and the four advisors exclusively
// for the duration of one Search call (§5 "Shared-resource policy").
type Engine struct {
	lvl       *level.Level
	adv       *Advisors
	maxStates int
	timeLimit time.Duration
}

// NewEngine builds the engine for lvl, running the one-time retrograde
// packing analysis. Construction errors (§7) are returned immediately
// and the Engine is not usable afterward. A level whose start already
// is the goal needs no plan: no advisors are built for it, and Search
// returns an empty solution.
func NewEngine(lvl *level.Level, maxStates int, timeLimit time.Duration) (*Engine, error) {
	var adv *Advisors
	if !InitialState(lvl).IsGoal(lvl) {
		var err error
		adv, err = NewAdvisors(lvl)
		if err != nil {
			return nil, errors.WithMessage(err, "fess: engine construction failed")
		}
	}
	log.Debug().
		Int("targets", len(lvl.Targets())).
		Int("width", lvl.Width).
		Int("height", lvl.Height).
		Msg("fess engine constructed")
	return &Engine{lvl: lvl, adv: adv, maxStates: maxStates, timeLimit: timeLimit}, nil
}

// Search runs the engine loop of §4.L and returns either a Solution or
// a Failure; it never returns both nil (one side is always populated).
func (e *Engine) Search(progress ProgressFunc) (*Solution, *Failure) {
	start := time.Now()
	tree, root := NewTree(InitialState(e.lvl))
	idx := NewFeatureIndex()
	explored := 0

	stats := func() Statistics {
		return Statistics{
			StatesExplored:  explored,
			StatesGenerated: tree.Size(),
			CellsOccupied:   idx.CellCount(),
			SolveTime:       time.Since(start),
		}
	}

	if root.State.IsGoal(e.lvl) {
		return &Solution{Moves: nil, Statistics: stats()}, nil
	}
	idx.Insert(e.adv, root)

	cellsSinceReport := 0
	noProgress := 0

	for {
		if tree.Size() >= e.maxStates || time.Since(start) >= e.timeLimit {
			log.Debug().Int("states", tree.Size()).Msg("fess: budget exhausted")
			return nil, &Failure{Reason: BudgetExhausted, Statistics: stats()}
		}

		cell, ok := idx.NextCell()
		if !ok {
			return nil, &Failure{Reason: NoSolution, Statistics: stats()}
		}
		cellsSinceReport++
		if progress != nil && cellsSinceReport >= progressEveryCells {
			cellsSinceReport = 0
			safeProgress(progress, stats())
		}

		node, move, weight, found := bestUnexpandedMove(e.lvl, e.adv, cell)
		if !found {
			noProgress++
			if noProgress >= idx.CellCount() {
				return nil, &Failure{Reason: NoSolution, Statistics: stats()}
			}
			continue
		}
		noProgress = 0
		explored++
		move.Weight = weight

		child := applyMove(e.lvl, node.State, move)
		node.MarkExpanded(move)

		if isCornerDeadlock(e.lvl, move.BoxTo()) {
			continue
		}

		childNode, created := tree.TryAdd(child, node, move, weight)
		if !created {
			continue
		}
		idx.Insert(e.adv, childNode)

		if childNode.State.IsGoal(e.lvl) {
			log.Debug().Int("states", tree.Size()).Int("moves", len(childNode.Path())).Msg("fess: solution found")
			return &Solution{Moves: childNode.Path(), Statistics: stats()}, nil
		}
	}
}

// bestUnexpandedMove finds the (node, move) pair in cell with the
// minimum accumulated_weight(node) + weight(move) among moves not yet
// expanded from their node (§4.L step 2).
func bestUnexpandedMove(lvl *level.Level, adv *Advisors, cell *FeatureCell) (*TreeNode, Move, int, bool) {
	var bestNode *TreeNode
	var bestMove Move
	bestWeight := 0
	bestTotal := -1
	for _, node := range cell.Nodes {
		for _, m := range generateMoves(lvl, node.State) {
			if node.IsExpanded(m) {
				continue
			}
			child := applyMove(lvl, node.State, m)
			w := assignWeight(adv, node.State, child, m)
			total := node.AccumulatedWeight + w
			if bestTotal == -1 || total < bestTotal {
				bestTotal = total
				bestNode = node
				bestMove = m
				bestWeight = w
			}
		}
	}
	if bestTotal == -1 {
		return nil, Move{}, 0, false
	}
	return bestNode, bestMove, bestWeight, true
}

func safeProgress(progress ProgressFunc, stats Statistics) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("fess: progress callback panicked, ignoring")
		}
	}()
	progress(stats)
}
