package fess

import (
	"testing"
	"time"
)

func solveOrFatal(t *testing.T, text string) *Solution {
	t.Helper()
	lvl := mustParse(t, text)
	eng, err := NewEngine(lvl, 10000, 10*time.Second)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sol, fail := eng.Search(nil)
	if fail != nil {
		t.Fatalf("expected a solution, got failure %v", fail.Reason)
	}
	return sol
}

func TestEngineAlreadyAtGoalSolvesWithZeroMoves(t *testing.T) {
	lvl := mustParse(t, "####\n#@*#\n####")
	eng, err := NewEngine(lvl, 1000, time.Second)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sol, fail := eng.Search(nil)
	if fail != nil {
		t.Fatalf("expected success, got %v", fail.Reason)
	}
	if len(sol.Moves) != 0 {
		t.Fatalf("expected zero moves, got %v", sol.Moves)
	}
}

func TestEngineSingleBoxAdjacentToTargetSolvesInOneMoveWithWeightZero(t *testing.T) {
	// The box's only legal push lands it directly on the level's only
	// target: the packing advisor endorses it and nothing vetoes, so
	// the move must carry weight 0.
	sol := solveOrFatal(t, "#####\n#@$.#\n#####")
	if len(sol.Moves) != 1 {
		t.Fatalf("expected a 1-move solution, got %v", sol.Moves)
	}
	if sol.Moves[0].Direction != Right {
		t.Fatalf("expected a rightward push, got %v", sol.Moves[0].Direction)
	}
	if sol.Moves[0].Weight != 0 {
		t.Fatalf("expected weight 0, got %d", sol.Moves[0].Weight)
	}
}

func TestEngineOnePushViaARoomWithABypass(t *testing.T) {
	// A box sits between a target above and an open bypass corridor;
	// the shortest solution is the single up-push.
	sol := solveOrFatal(t, "#####\n#.  #\n#$  #\n#@  #\n#####")
	if len(sol.Moves) != 1 || sol.Moves[0].Direction != Up {
		t.Fatalf("expected a single up-push, got %v", sol.Moves)
	}
}

func TestEngineTwoPushesAfterNavigatingBehindTheBox(t *testing.T) {
	// The player starts away from the square behind the box and the
	// target sits two rows above the box's start, so the shortest path
	// needs the player to walk into position before pushing up twice.
	// The exact path the best-first search settles on depends on the
	// advisors' weight ties between the box's two legal initial pushes,
	// so this only asserts the engine reaches the goal within a small
	// number of pushes, not the literal move count.
	sol := solveOrFatal(t, "####\n#. #\n#  #\n#$ #\n# @#\n####")
	if len(sol.Moves) == 0 {
		t.Fatalf("expected at least one move")
	}
	if len(sol.Moves) > 4 {
		t.Fatalf("expected a short solution, got %d moves: %v", len(sol.Moves), sol.Moves)
	}
}

func TestEngineDeadCornerBoxReturnsNoSolutionWithoutExploring(t *testing.T) {
	// The box starts wedged in a corner, off its target, with no legal
	// push at all: the root cell yields no move and the engine must
	// report no_solution without generating any further states.
	lvl := mustParse(t, "#####\n#$  #\n#  .#\n#  @#\n#####")
	eng, err := NewEngine(lvl, 10000, 10*time.Second)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sol, fail := eng.Search(nil)
	if sol != nil {
		t.Fatalf("expected no solution, got %v", sol)
	}
	if fail.Reason != NoSolution {
		t.Fatalf("expected no_solution, got %v", fail.Reason)
	}
	if fail.Statistics.StatesGenerated != 1 {
		t.Fatalf("expected the search to generate only the root state, got %d", fail.Statistics.StatesGenerated)
	}
}

func TestSafeProgressRecoversFromPanickingCallback(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("safeProgress let a callback panic escape: %v", r)
		}
	}()
	safeProgress(func(Statistics) { panic("boom") }, Statistics{})
}

func TestEngineBudgetExhaustedWhenMaxStatesIsZero(t *testing.T) {
	lvl := mustParse(t, "#####\n#.  #\n#$  #\n#@  #\n#####")
	eng, err := NewEngine(lvl, 0, time.Second)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sol, fail := eng.Search(nil)
	if sol != nil {
		t.Fatalf("expected no solution with a zero state budget, got %v", sol)
	}
	if fail.Reason != BudgetExhausted {
		t.Fatalf("expected budget_exhausted, got %v", fail.Reason)
	}
}
