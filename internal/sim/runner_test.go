package sim

import (
	"context"
	"errors"
	"testing"

	cards "github.com/ismemang/node-cards"
)

func TestRunnerFinishesClean(t *testing.T) {
	r := NewRunner(Balanced, Options{
		Episodes:      4,
		OpsPerEpisode: 80,
		Workers:       2,
		Seed:          7,
	}, nil)

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(report.Violations) != 0 {
		t.Fatalf("violations = %d, want 0; first: %+v", len(report.Violations), report.Violations[0])
	}
	if report.Episodes != 4 {
		t.Fatalf("episodes = %d, want 4", report.Episodes)
	}
	if report.TotalOps != 4*80 {
		t.Fatalf("total ops = %d, want %d", report.TotalOps, 4*80)
	}

	var sum int64
	for _, n := range report.PerOp {
		sum += n
	}
	if sum != report.TotalOps {
		t.Fatalf("per-op counts sum to %d, want %d", sum, report.TotalOps)
	}
	if report.Elapsed <= 0 {
		t.Fatalf("elapsed = %v, want positive", report.Elapsed)
	}
}

func TestRunnerIsDeterministicPerSeed(t *testing.T) {
	run := func(workers int) *Report {
		t.Helper()
		r := NewRunner(Chaotic, Options{
			Episodes:      6,
			OpsPerEpisode: 120,
			Workers:       workers,
			Seed:          99,
		}, nil)
		report, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("run error: %v", err)
		}
		return report
	}

	serial := run(1)
	parallel := run(3)

	if serial.TotalOps != parallel.TotalOps {
		t.Fatalf("total ops diverged: %d vs %d", serial.TotalOps, parallel.TotalOps)
	}
	for _, op := range Ops {
		if serial.PerOp[op] != parallel.PerOp[op] {
			t.Fatalf("op %s diverged: %d vs %d", op, serial.PerOp[op], parallel.PerOp[op])
		}
	}
	if len(serial.Violations) != len(parallel.Violations) {
		t.Fatalf("violations diverged: %d vs %d", len(serial.Violations), len(parallel.Violations))
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(Balanced, Options{
		Episodes:      1000,
		OpsPerEpisode: 1000,
		Workers:       2,
		Seed:          1,
	}, nil)

	_, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestRunnerWithoutEpisodes(t *testing.T) {
	r := NewRunner(Balanced, Options{}, nil)
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if report.TotalOps != 0 || len(report.Violations) != 0 {
		t.Fatalf("empty run should do nothing, got %+v", report)
	}
}

func TestRunnerUsesCardFactory(t *testing.T) {
	built := 0
	r := NewRunner(Dealer, Options{
		Episodes:      3,
		OpsPerEpisode: 10,
		Workers:       1,
		Seed:          5,
		BuildCards: func() []*cards.Card {
			built++
			return cards.Piquet()
		},
	}, nil)

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if built != 3 {
		t.Fatalf("card factory ran %d times, want once per episode", built)
	}
}

func TestMembersBySlotOrdersByPile(t *testing.T) {
	d := cards.New(cards.Standard()...)
	if _, err := d.Draw(4); err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if _, err := d.DrawToDiscard(2); err != nil {
		t.Fatalf("draw error: %v", err)
	}

	members := membersBySlot(d)
	if len(members) != d.Len() {
		t.Fatalf("slot view has %d cards, deck owns %d", len(members), d.Len())
	}

	lastPile, lastIdx := -1, -1
	for _, c := range members {
		loc, err := d.Locate(c)
		if err != nil {
			t.Fatalf("locate error: %v", err)
		}
		p := pileOrder(loc.Pile)
		if p < lastPile || (p == lastPile && loc.Index <= lastIdx) {
			t.Fatalf("slot view out of order at %s[%d]", loc.Pile, loc.Index)
		}
		lastPile, lastIdx = p, loc.Index
	}
}

func TestOpTrail(t *testing.T) {
	tr := newTrail(3)
	if got := tr.ops(); len(got) != 0 {
		t.Fatalf("fresh trail = %v, want empty", got)
	}

	tr.push(OpDraw)
	tr.push(OpAdd)
	got := tr.ops()
	if len(got) != 2 || got[0] != OpDraw || got[1] != OpAdd {
		t.Fatalf("trail = %v, want [draw add]", got)
	}

	tr.push(OpMerge)
	tr.push(OpRemove) // evicts the oldest
	got = tr.ops()
	if len(got) != 3 || got[0] != OpAdd || got[2] != OpRemove {
		t.Fatalf("trail = %v, want [add merge remove]", got)
	}
}
