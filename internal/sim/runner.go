package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cards "github.com/ismemang/node-cards"
)

// Options sizes a soak run.
type Options struct {
	Episodes      int   // independent decks to exercise
	OpsPerEpisode int   // operations applied to each deck
	Workers       int   // parallel episodes; non-positive means one per CPU
	Seed          int64 // base seed; episode e seeds its rng with Seed+e
	BuildCards    func() []*cards.Card
}

// Violation is one failed check, with the operations leading up to it.
type Violation struct {
	Episode int
	Step    int
	Op      Op
	Reason  string
	Trail   []Op
}

// Report aggregates a finished run.
type Report struct {
	RunID      uuid.UUID
	Episodes   int
	TotalOps   int64
	PerOp      map[Op]int64
	Violations []Violation
	Elapsed    time.Duration
}

// OpsPerSecond reports the aggregate throughput of the run.
func (r *Report) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalOps) / r.Elapsed.Seconds()
}

// Runner applies weighted operation mixes to fresh decks and checks the
// bookkeeping after every step. Episodes are independent: each gets its
// own cards and its own rng, so a run is reproducible from its seed no
// matter how many workers share the load.
type Runner struct {
	profile Profile
	opts    Options
	build   func() []*cards.Card
	log     *zap.SugaredLogger
}

// episodeAcc collects results worker-locally; accumulators merge after
// the group is done, so no locking.
type episodeAcc struct {
	ops        int64
	perOp      map[Op]int64
	violations []Violation
}

// NewRunner constructs a Runner. A nil logger disables logging; a nil
// BuildCards plays with the standard 52-card pack.
func NewRunner(profile Profile, opts Options, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	build := opts.BuildCards
	if build == nil {
		build = cards.Standard
	}
	return &Runner{profile: profile, opts: opts, build: build, log: log}
}

// Run executes every episode and aggregates the results. It stops early
// only when ctx is done; violations are collected, not fatal.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.opts.Episodes <= 0 {
		return &Report{RunID: uuid.New(), PerOp: make(map[Op]int64)}, nil
	}
	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > r.opts.Episodes {
		workers = r.opts.Episodes
	}

	r.log.Infow("soak run starting",
		"episodes", r.opts.Episodes,
		"ops_per_episode", r.opts.OpsPerEpisode,
		"workers", workers,
		"seed", r.opts.Seed,
		"profile", r.profile.Name,
	)

	start := time.Now()
	accs := make([]episodeAcc, workers)
	for i := range accs {
		accs[i].perOp = make(map[Op]int64, len(Ops))
	}

	episodes := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(episodes)
		for e := 0; e < r.opts.Episodes; e++ {
			select {
			case episodes <- e:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := range accs {
		acc := &accs[w]
		g.Go(func() error {
			for e := range episodes {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.runEpisode(e, acc)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    uuid.New(),
		Episodes: r.opts.Episodes,
		PerOp:    make(map[Op]int64, len(Ops)),
		Elapsed:  time.Since(start),
	}
	for i := range accs {
		report.TotalOps += accs[i].ops
		for op, n := range accs[i].perOp {
			report.PerOp[op] += n
		}
		report.Violations = append(report.Violations, accs[i].violations...)
	}
	sort.Slice(report.Violations, func(i, j int) bool {
		a, b := report.Violations[i], report.Violations[j]
		if a.Episode != b.Episode {
			return a.Episode < b.Episode
		}
		return a.Step < b.Step
	})

	r.log.Infow("soak run finished",
		"total_ops", report.TotalOps,
		"violations", len(report.Violations),
		"elapsed", report.Elapsed.String(),
	)
	return report, nil
}

// runEpisode plays one deck through the profile's mix. The episode stops
// at its first violation; a broken deck would only report the same
// breakage again.
func (r *Runner) runEpisode(episode int, acc *episodeAcc) {
	rng := rand.New(rand.NewSource(r.opts.Seed + int64(episode)))
	deck := cards.NewWithRand(rng, r.build()...)
	trail := newTrail(trailDepth)

	for step := 0; step < r.opts.OpsPerEpisode; step++ {
		op := r.profile.Pick(rng)
		trail.push(op)
		acc.ops++
		acc.perOp[op]++

		reason := apply(op, deck, rng)
		if reason == "" {
			if err := Check(deck); err != nil {
				reason = err.Error()
			}
		}
		if reason != "" {
			acc.violations = append(acc.violations, Violation{
				Episode: episode,
				Step:    step,
				Op:      op,
				Reason:  reason,
				Trail:   trail.ops(),
			})
			r.log.Errorw("deck check failed",
				"episode", episode,
				"step", step,
				"op", string(op),
				"reason", reason,
			)
			return
		}
	}
	r.log.Debugw("episode clean", "episode", episode)
}

var piles = []cards.Pile{cards.PileDraw, cards.PileHeld, cards.PileDiscard}

// apply performs one operation and checks its direct outcome against the
// documented contract. It returns "" when the outcome is as promised.
func apply(op Op, d *cards.Deck, rng *rand.Rand) string {
	switch op {
	case OpDraw:
		return checkDraw(d, rng.Intn(5)+1, d.Draw)
	case OpDrawBottom:
		return checkDraw(d, rng.Intn(5)+1, d.DrawFromBottom)
	case OpDrawToDiscard:
		return checkDraw(d, rng.Intn(5)+1, d.DrawToDiscard)
	case OpDrawToDiscardBottom:
		return checkDraw(d, rng.Intn(5)+1, d.DrawToDiscardFromBottom)

	case OpDiscardHeld:
		// Prefer a held card; otherwise re-discard one to confirm the no-op.
		if held := d.Held(); len(held) > 0 {
			if err := d.Discard(held[rng.Intn(len(held))]); err != nil {
				return fmt.Sprintf("discard of held card failed: %v", err)
			}
			return ""
		}
		disc := d.Discarded()
		if len(disc) == 0 {
			return ""
		}
		if err := d.Discard(disc[rng.Intn(len(disc))]); err != nil {
			return fmt.Sprintf("re-discard failed: %v", err)
		}
		if len(d.Discarded()) != len(disc) {
			return "re-discard changed the discard pile size"
		}
		return ""

	case OpDiscardAllHeld:
		heldBefore := len(d.Held())
		discBefore := len(d.Discarded())
		d.DiscardAllHeld()
		if len(d.Held()) != 0 || len(d.Discarded()) != heldBefore+discBefore {
			return "discard-all-held did not move the whole held pile"
		}
		return ""

	case OpShuffleAll:
		d.ShuffleAll()
		if d.Remaining() != d.Len() {
			return fmt.Sprintf("shuffle-all left %d of %d cards outside the draw pile", d.Len()-d.Remaining(), d.Len())
		}
		return ""

	case OpShuffleRemaining:
		before := d.Remaining()
		d.ShuffleRemaining()
		if d.Remaining() != before {
			return "shuffle changed the draw pile size"
		}
		return ""

	case OpShuffleDiscard:
		drawBefore := d.Remaining()
		discBefore := len(d.Discarded())
		d.ShuffleDiscard()
		if len(d.Discarded()) != 0 || d.Remaining() != drawBefore+discBefore {
			return "shuffle-discard lost cards between piles"
		}
		return ""

	case OpShuffleDeckAndDiscard:
		drawBefore := d.Remaining()
		discBefore := len(d.Discarded())
		d.ShuffleDeckAndDiscard()
		if len(d.Discarded()) != 0 || d.Remaining() != drawBefore+discBefore {
			return "deck-and-discard shuffle lost cards between piles"
		}
		return ""

	case OpAdd:
		// Roughly one add in eight aims at a bogus pile on purpose.
		if rng.Intn(8) == 0 {
			err := d.AddTo(cards.NewCard(cards.Spades, cards.Ace), cards.Pile("bogus"))
			if !errors.Is(err, cards.ErrInvalidPile) {
				return fmt.Sprintf("add to bogus pile = %v, want invalid-pile", err)
			}
			return ""
		}
		c := cards.NewCard(randomSuit(rng), randomRank(rng))
		before := d.Len()
		if err := d.AddTo(c, piles[rng.Intn(len(piles))]); err != nil {
			return fmt.Sprintf("add failed: %v", err)
		}
		if d.Len() != before+1 || c.Deck() != d {
			return "add did not register the card"
		}
		return ""

	case OpRemove:
		members := membersBySlot(d)
		if len(members) == 0 {
			return ""
		}
		c := members[rng.Intn(len(members))]
		d.Remove(c)
		if err := CheckGone(d, c); err != nil {
			return err.Error()
		}
		return ""

	case OpMerge:
		n := rng.Intn(3) + 1
		side := cards.New(cards.Jokers(n)...)
		before := d.Len()
		if err := d.MergeTo(side, piles[rng.Intn(len(piles))]); err != nil {
			return fmt.Sprintf("merge failed: %v", err)
		}
		if side.Len() != 0 {
			return fmt.Sprintf("merged-from deck still owns %d cards", side.Len())
		}
		if d.Len() != before+n {
			return fmt.Sprintf("deck owns %d cards after merge, want %d", d.Len(), before+n)
		}
		return ""

	case OpLocate:
		// Half the probes use a stranger card, which must fail cleanly.
		if rng.Intn(2) == 0 {
			_, err := d.Locate(cards.NewCard(cards.Spades, cards.Ace))
			if !errors.Is(err, cards.ErrNotMember) {
				return fmt.Sprintf("locate of stranger card = %v, want not-member", err)
			}
			return ""
		}
		members := membersBySlot(d)
		if len(members) == 0 {
			return ""
		}
		if _, err := d.Locate(members[rng.Intn(len(members))]); err != nil {
			return fmt.Sprintf("locate of member failed: %v", err)
		}
		return ""
	}
	return fmt.Sprintf("no handler for op %q", op)
}

// checkDraw runs one draw variant and verifies the returned count.
func checkDraw(d *cards.Deck, n int, draw func(int) ([]*cards.Card, error)) string {
	before := d.Remaining()
	got, err := draw(n)
	if err != nil {
		if before == 0 && errors.Is(err, cards.ErrEmptyDeck) {
			return ""
		}
		return fmt.Sprintf("draw of %d with %d remaining failed: %v", n, before, err)
	}
	want := n
	if want > before {
		want = before
	}
	if len(got) != want {
		return fmt.Sprintf("draw returned %d cards, want %d", len(got), want)
	}
	return ""
}

var suits = []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs}

func randomSuit(rng *rand.Rand) cards.Suit {
	return suits[rng.Intn(len(suits))]
}

func randomRank(rng *rand.Rand) cards.Rank {
	return cards.Rank(rng.Intn(int(cards.King)) + 1)
}

// membersBySlot returns the deck's cards ordered by pile and index.
// Membership iteration order is unspecified, so random picks go through
// this view to keep episodes reproducible.
func membersBySlot(d *cards.Deck) []*cards.Card {
	members := d.Find(func(*cards.Card) bool { return true })
	type slot struct {
		card *cards.Card
		pile int
		idx  int
	}
	slots := make([]slot, 0, len(members))
	for _, c := range members {
		loc, err := d.Locate(c)
		if err != nil {
			continue
		}
		slots = append(slots, slot{card: c, pile: pileOrder(loc.Pile), idx: loc.Index})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].pile != slots[j].pile {
			return slots[i].pile < slots[j].pile
		}
		return slots[i].idx < slots[j].idx
	})
	out := make([]*cards.Card, len(slots))
	for i, s := range slots {
		out[i] = s.card
	}
	return out
}

func pileOrder(p cards.Pile) int {
	switch p {
	case cards.PileDraw:
		return 0
	case cards.PileHeld:
		return 1
	default:
		return 2
	}
}
