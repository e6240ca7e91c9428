// Command sokobench runs the fess engine over a level collection and
// reports how many levels solved within budget (spec.md §6 "Process
// contract"): exit code 0 iff every level solved, nonzero otherwise.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/bertbaron/fess-sokoban/bench"
	"github.com/bertbaron/fess-sokoban/fess"
)

const (
	defaultMaxStates = 100000
	defaultTimeLimit = 60 * time.Second
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	app := &cli.App{
		Name:  "sokobench",
		Usage: "benchmark the FESS solver against a level collection",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "levels", Aliases: []string{"l"}, Required: true, Usage: "path to a level-collection text file"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "optional config file with max_states/time_limit_seconds defaults"},
			&cli.IntFlag{Name: "max-states", Usage: "override max_states per level"},
			&cli.DurationFlag{Name: "time-limit", Usage: "override time_limit per level"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "sokobench-report.json", Usage: "path to write the JSON report"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug-level logging"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("sokobench: run failed")
		os.Exit(2)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	maxStates, timeLimit, err := resolveBudget(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.String("levels"))
	if err != nil {
		return fmt.Errorf("sokobench: reading level file: %w", err)
	}

	progress := func(levelNumber int, title string, stats fess.Statistics) {
		log.Debug().
			Int("level", levelNumber).
			Str("title", title).
			Int("explored", stats.StatesExplored).
			Int("generated", stats.StatesGenerated).
			Msg("sokobench: progress")
	}

	report, err := bench.RunFile(string(data), maxStates, timeLimit, progress)
	if err != nil {
		return err
	}

	printSummary(report)

	out, err := report.JSON()
	if err != nil {
		return fmt.Errorf("sokobench: encoding report: %w", err)
	}
	if err := os.WriteFile(c.String("output"), out, 0o644); err != nil {
		return fmt.Errorf("sokobench: writing report to %s: %w", c.String("output"), err)
	}
	log.Info().Str("path", c.String("output")).Msg("sokobench: wrote report")

	if !report.AllSolved() {
		return cli.Exit(fmt.Sprintf("sokobench: %d/%d levels solved", report.Solved, report.Total), 1)
	}
	return nil
}

// resolveBudget applies the three-tier precedence spec.md §6 names for
// run configuration: explicit flags win, then a viper-loaded config
// file, then the built-in defaults.
func resolveBudget(c *cli.Context) (maxStates int, timeLimit time.Duration, err error) {
	v := viper.New()
	v.SetDefault("max_states", defaultMaxStates)
	v.SetDefault("time_limit_seconds", int(defaultTimeLimit/time.Second))

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return 0, 0, fmt.Errorf("sokobench: reading config %s: %w", path, err)
		}
	}

	maxStates = v.GetInt("max_states")
	timeLimit = time.Duration(v.GetInt("time_limit_seconds")) * time.Second

	if c.IsSet("max-states") {
		maxStates = c.Int("max-states")
	}
	if c.IsSet("time-limit") {
		timeLimit = c.Duration("time-limit")
	}
	if maxStates <= 0 {
		return 0, 0, fmt.Errorf("sokobench: max_states must be positive, got %d", maxStates)
	}
	if timeLimit <= 0 {
		return 0, 0, fmt.Errorf("sokobench: time_limit must be positive, got %s", timeLimit)
	}
	return maxStates, timeLimit, nil
}

func printSummary(r *bench.Report) {
	fmt.Printf("run %s: %d/%d levels solved (max_states=%d, time_limit=%s)\n",
		r.RunID, r.Solved, r.Total, r.MaxStates, r.TimeLimit)
	for _, lr := range r.Levels {
		status := "FAIL"
		if lr.Solved {
			status = "ok"
		}
		fmt.Printf("  [%3d] %-30s %-4s moves=%-5d explored=%-7d generated=%-7d %s\n",
			lr.Number, lr.Title, status, lr.Moves, lr.StatesExplored, lr.StatesGenerated, lr.Error)
	}
}
