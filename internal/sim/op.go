package sim

import (
	"fmt"
	"math/rand"
)

// Op identifies one deck operation the soak runner can apply.
type Op string

const (
	OpDraw                  Op = "draw"
	OpDrawBottom            Op = "draw_bottom"
	OpDrawToDiscard         Op = "draw_discard"
	OpDrawToDiscardBottom   Op = "draw_discard_bottom"
	OpDiscardHeld           Op = "discard_held"
	OpDiscardAllHeld        Op = "discard_all_held"
	OpShuffleAll            Op = "shuffle_all"
	OpShuffleRemaining      Op = "shuffle_remaining"
	OpShuffleDiscard        Op = "shuffle_discard"
	OpShuffleDeckAndDiscard Op = "shuffle_deck_discard"
	OpAdd                   Op = "add"
	OpRemove                Op = "remove"
	OpMerge                 Op = "merge"
	OpLocate                Op = "locate"
)

// Ops lists every operation in a stable order for weight tables and
// report rows.
var Ops = []Op{
	OpDraw,
	OpDrawBottom,
	OpDrawToDiscard,
	OpDrawToDiscardBottom,
	OpDiscardHeld,
	OpDiscardAllHeld,
	OpShuffleAll,
	OpShuffleRemaining,
	OpShuffleDiscard,
	OpShuffleDeckAndDiscard,
	OpAdd,
	OpRemove,
	OpMerge,
	OpLocate,
}

// Profile is a weighted mix of operations, shaping what kind of deck
// consumer an episode imitates.
type Profile struct {
	Name    string
	Weights map[Op]int
}

// Balanced gives every operation a roughly even share.
var Balanced = Profile{
	Name: "balanced",
	Weights: map[Op]int{
		OpDraw:                  10,
		OpDrawBottom:            6,
		OpDrawToDiscard:         6,
		OpDrawToDiscardBottom:   4,
		OpDiscardHeld:           10,
		OpDiscardAllHeld:        4,
		OpShuffleAll:            3,
		OpShuffleRemaining:      4,
		OpShuffleDiscard:        4,
		OpShuffleDeckAndDiscard: 3,
		OpAdd:                   6,
		OpRemove:                6,
		OpMerge:                 4,
		OpLocate:                10,
	},
}

// Dealer plays like a table dealer: heavy drawing and discarding with the
// occasional reshuffle, membership nearly fixed.
var Dealer = Profile{
	Name: "dealer",
	Weights: map[Op]int{
		OpDraw:                  24,
		OpDrawBottom:            2,
		OpDrawToDiscard:         8,
		OpDrawToDiscardBottom:   1,
		OpDiscardHeld:           18,
		OpDiscardAllHeld:        6,
		OpShuffleAll:            4,
		OpShuffleRemaining:      1,
		OpShuffleDiscard:        6,
		OpShuffleDeckAndDiscard: 2,
		OpAdd:                   1,
		OpRemove:                1,
		OpMerge:                 1,
		OpLocate:                8,
	},
}

// Chaotic hammers membership churn and shuffle edge cases.
var Chaotic = Profile{
	Name: "chaotic",
	Weights: map[Op]int{
		OpDraw:                  6,
		OpDrawBottom:            6,
		OpDrawToDiscard:         6,
		OpDrawToDiscardBottom:   6,
		OpDiscardHeld:           6,
		OpDiscardAllHeld:        6,
		OpShuffleAll:            8,
		OpShuffleRemaining:      6,
		OpShuffleDiscard:        8,
		OpShuffleDeckAndDiscard: 8,
		OpAdd:                   12,
		OpRemove:                12,
		OpMerge:                 10,
		OpLocate:                4,
	},
}

// NewProfile returns the named preset profile.
func NewProfile(name string) (Profile, error) {
	switch name {
	case Balanced.Name:
		return Balanced, nil
	case Dealer.Name:
		return Dealer, nil
	case Chaotic.Name:
		return Chaotic, nil
	default:
		return Profile{}, fmt.Errorf("unknown profile: %q", name)
	}
}

// Pick selects an operation with probability proportional to its weight.
// A profile with no positive weight always picks OpLocate.
func (p Profile) Pick(rng *rand.Rand) Op {
	total := 0
	for _, op := range Ops {
		if w := p.Weights[op]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return OpLocate
	}
	n := rng.Intn(total)
	for _, op := range Ops {
		if w := p.Weights[op]; w > 0 {
			n -= w
			if n < 0 {
				return op
			}
		}
	}
	return OpLocate
}
