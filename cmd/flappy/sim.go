package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/autopilot"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagRuns    int
	flagSpeed   float64
	flagTimeout time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headless runs",
	Long: `Run the game without a terminal UI. The autopilot jumps whenever the actor
is about to sink below the gap, and restarts after every game over until
--runs games have ended. Both timers run in real time, scaled by --speed.

Examples:
  flappy sim
  flappy sim --runs 20 --speed 8 --seed 7
  flappy sim --log-level debug`,
	Run: run(runSim),
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of games to play")
	simCmd.Flags().Float64Var(&flagSpeed, "speed", 1, "Timer speed multiplier")
	simCmd.Flags().DurationVar(&flagTimeout, "timeout", 5*time.Minute, "Stop after this long (0 = no limit)")
}

func runSim(_ []string) error {
	if flagRuns < 1 || flagSpeed <= 0 {
		return errors.New("--runs must be at least 1 and --speed positive")
	}

	gameCfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort cleanup

	cfg := gameCfg.Engine()
	cfg.VerticalPeriod = scalePeriod(cfg.VerticalPeriod, flagSpeed)
	cfg.HorizontalPeriod = scalePeriod(cfg.HorizontalPeriod, flagSpeed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	pilot := autopilot.New(cfg, true)
	var (
		runs    []tui.RunSummary
		started time.Time
	)
	handler := func(res engine.StepResult) engine.Action {
		for _, ev := range res.Events {
			switch ev.Kind {
			case engine.EventStarted:
				started = time.Now()
				logger.Debug("run started", "run", len(runs)+1)
			case engine.EventScored:
				logger.Debug("obstacle passed", "run", len(runs)+1, "score", ev.Score)
			case engine.EventGameOver:
				runs = append(runs, tui.RunSummary{
					Run:      len(runs) + 1,
					Score:    ev.Score,
					Duration: time.Since(started),
				})
				logger.Info("game over", "run", len(runs), "score", ev.Score,
					"explosion_top", ev.Explosion.Top, "explosion_left", ev.Explosion.Left)
				if len(runs) >= flagRuns {
					cancel()
					return engine.ActionNone
				}
			}
		}
		return pilot.Decide(res)
	}

	eng := engine.New(cfg, newRand(flagSeed))
	loop := engine.NewLoop(eng, nil, handler)

	// The pilot acts on steps, so the first jump is sent from outside.
	if err := loop.Send(ctx, engine.ActionJump); err != nil {
		return err
	}

	if err := loop.Run(ctx); errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("timeout reached", "finished", len(runs), "wanted", flagRuns)
	}

	fmt.Println(tui.SummaryTable(runs))
	return nil
}

func scalePeriod(d time.Duration, speed float64) time.Duration {
	return max(time.Duration(float64(d)/speed), time.Millisecond)
}
