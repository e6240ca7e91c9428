package bench

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/bertbaron/fess-sokoban/fess"
	"github.com/bertbaron/fess-sokoban/level"
)

// ProgressFunc is forwarded to each level's Engine.Search call.
type ProgressFunc func(levelNumber int, title string, stats fess.Statistics)

// Run solves every level in c in order, recording each outcome into a
// fresh Report. A level whose own construction fails (an unsolvable
// retrograde plan, say) is recorded as a failed result rather than
// aborting the whole run, so one bad level in a 90-level set does not
// hide the other 89 (spec.md §8 scenario 4).
func Run(c *level.Collection, maxStates int, timeLimit time.Duration, progress ProgressFunc) *Report {
	report := NewReport(maxStates, timeLimit)
	for i := 0; i < c.LevelCount(); i++ {
		title, lvl := c.Level(i)
		log.Info().Int("level", i+1).Str("title", title).Msg("bench: solving level")

		eng, err := fess.NewEngine(lvl, maxStates, timeLimit)
		if err != nil {
			report.Add(i+1, title, nil, &fess.Failure{Reason: fess.UnsolvablePlan})
			log.Warn().Int("level", i+1).Str("title", title).Err(err).Msg("bench: construction failed")
			continue
		}

		var cb fess.ProgressFunc
		if progress != nil {
			cb = func(stats fess.Statistics) { progress(i+1, title, stats) }
		}
		sol, fail := eng.Search(cb)
		report.Add(i+1, title, sol, fail)
	}
	return report
}

// RunFile parses text as a level collection and benchmarks it.
func RunFile(text string, maxStates int, timeLimit time.Duration, progress ProgressFunc) (*Report, error) {
	c, err := level.ParseCollection(text)
	if err != nil {
		return nil, errors.WithMessage(err, "bench: failed to parse level collection")
	}
	return Run(c, maxStates, timeLimit, progress), nil
}
