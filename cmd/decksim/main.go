// Command decksim soaks the cards library: it replays weighted operation
// mixes against fresh decks in parallel and verifies the pile bookkeeping
// after every step. A run is reproducible from its seed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/ismemang/node-cards/internal/config"
	"github.com/ismemang/node-cards/internal/sim"
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		return err
	}
	defer logger.Sync()

	profile, err := sim.NewProfile(cfg.Profile)
	if err != nil {
		return err
	}
	build, err := sim.CardsForPreset(cfg.Preset, cfg.Jokers)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = sim.RandomSeed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.NewRunner(profile, sim.Options{
		Episodes:      cfg.Episodes,
		OpsPerEpisode: cfg.Ops,
		Workers:       cfg.Workers,
		Seed:          seed,
		BuildCards:    build,
	}, logger.Sugar())

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	render(report, profile.Name, seed)

	if n := len(report.Violations); n > 0 {
		return fmt.Errorf("%d violations; rerun with DECKSIM_SEED=%d to reproduce", n, seed)
	}
	return nil
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" {
		return zap.NewProductionConfig().Build()
	}
	return zap.NewDevelopmentConfig().Build()
}

func render(r *sim.Report, profile string, seed int64) {
	rows := pterm.TableData{{"operation", "count"}}
	for _, op := range sim.Ops {
		rows = append(rows, []string{string(op), fmt.Sprintf("%d", r.PerOp[op])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	summary := pterm.Sprintfln("run %s", r.RunID) +
		pterm.Sprintfln("profile %s, seed %d", profile, seed) +
		pterm.Sprintfln("episodes %d, ops %d (%.0f op/s)", r.Episodes, r.TotalOps, r.OpsPerSecond()) +
		pterm.Sprintf("violations %d", len(r.Violations))
	pterm.DefaultBox.WithTitle("decksim").Println(summary)

	for _, v := range r.Violations {
		pterm.Error.Printfln("episode %d step %d op %s: %s (trail %v)", v.Episode, v.Step, v.Op, v.Reason, v.Trail)
	}
	if len(r.Violations) == 0 {
		pterm.Success.Printfln("deck bookkeeping held for %d operations", r.TotalOps)
	}
}
