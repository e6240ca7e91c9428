// Package bench runs a level collection through the fess engine and
// builds the JSON report spec.md §6 names: per-level outcome, moves
// and statistics, plus an aggregate summary.
package bench

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bertbaron/fess-sokoban/fess"
)

// LevelResult is one level's outcome in a benchmark run.
type LevelResult struct {
	Number          int           `json:"number"`
	Title           string        `json:"title"`
	Solved          bool          `json:"solved"`
	SolveTime       time.Duration `json:"solve_time_ns"`
	Moves           int           `json:"moves"`
	StatesExplored  int           `json:"states_explored"`
	StatesGenerated int           `json:"states_generated"`
	Error           string        `json:"error,omitempty"`
}

// Report is the aggregate artefact written to the benchmark's JSON
// output path.
type Report struct {
	RunID     string        `json:"run_id"`
	MaxStates int           `json:"max_states"`
	TimeLimit time.Duration `json:"time_limit_ns"`
	Levels    []LevelResult `json:"levels"`
	Solved    int           `json:"solved"`
	Total     int           `json:"total"`
}

// NewReport starts an empty report stamped with a fresh run ID.
func NewReport(maxStates int, timeLimit time.Duration) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		MaxStates: maxStates,
		TimeLimit: timeLimit,
	}
}

// Add records one level's outcome, built from either a Solution or a
// Failure (exactly one of which a caller has in hand after Search).
func (r *Report) Add(number int, title string, sol *fess.Solution, fail *fess.Failure) {
	res := LevelResult{Number: number, Title: title}
	switch {
	case sol != nil:
		res.Solved = true
		res.SolveTime = sol.Statistics.SolveTime
		res.Moves = len(sol.Moves)
		res.StatesExplored = sol.Statistics.StatesExplored
		res.StatesGenerated = sol.Statistics.StatesGenerated
		r.Solved++
	case fail != nil:
		res.SolveTime = fail.Statistics.SolveTime
		res.StatesExplored = fail.Statistics.StatesExplored
		res.StatesGenerated = fail.Statistics.StatesGenerated
		res.Error = string(fail.Reason)
	default:
		res.Error = "internal: neither solution nor failure"
	}
	r.Total++
	r.Levels = append(r.Levels, res)
}

// AllSolved reports whether every level in the run solved within its
// budget — the exit-code contract of spec.md §6.
func (r *Report) AllSolved() bool {
	return r.Total > 0 && r.Solved == r.Total
}

// JSON pretty-prints the report the way a human inspects a
// benchmark artefact after a run.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
