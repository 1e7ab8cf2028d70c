package sim

import (
	"errors"
	"fmt"

	cards "github.com/ismemang/node-cards"
)

// Check verifies a deck's bookkeeping through its public surface: the
// count identity, every owned card locatable in exactly one pile slot,
// and back-references pointing home. It returns the first broken rule.
func Check(d *cards.Deck) error {
	held := d.Held()
	discarded := d.Discarded()

	pileSum := d.Remaining() + len(held) + len(discarded)
	if pileSum != d.Len() {
		return fmt.Errorf("piles hold %d cards, deck owns %d", pileSum, d.Len())
	}

	members := d.Find(func(*cards.Card) bool { return true })
	if len(members) != d.Len() {
		return fmt.Errorf("membership lists %d cards, deck owns %d", len(members), d.Len())
	}

	size := map[cards.Pile]int{
		cards.PileDraw:    d.Remaining(),
		cards.PileHeld:    len(held),
		cards.PileDiscard: len(discarded),
	}
	taken := map[cards.Pile]map[int]bool{
		cards.PileDraw:    make(map[int]bool, size[cards.PileDraw]),
		cards.PileHeld:    make(map[int]bool, size[cards.PileHeld]),
		cards.PileDiscard: make(map[int]bool, size[cards.PileDiscard]),
	}

	// With counts equal, distinct in-range slots per card mean every
	// card sits in exactly one pile.
	for _, c := range members {
		if c.Deck() != d {
			return fmt.Errorf("card %s: back-reference points elsewhere", c)
		}
		loc, err := d.Locate(c)
		if err != nil {
			return fmt.Errorf("card %s: locate failed: %w", c, err)
		}
		if loc.Card != c {
			return fmt.Errorf("card %s: location reports a different card", c)
		}
		if loc.Index < 0 || loc.Index >= size[loc.Pile] {
			return fmt.Errorf("card %s: index %d out of range for %s pile of %d", c, loc.Index, loc.Pile, size[loc.Pile])
		}
		if taken[loc.Pile][loc.Index] {
			return fmt.Errorf("card %s: slot %s[%d] already occupied", c, loc.Pile, loc.Index)
		}
		taken[loc.Pile][loc.Index] = true
	}
	return nil
}

// CheckGone verifies a card is fully severed from the deck after removal.
func CheckGone(d *cards.Deck, c *cards.Card) error {
	if c.Deck() == d {
		return fmt.Errorf("card %s: still points at the deck", c)
	}
	if _, err := d.Locate(c); !errors.Is(err, cards.ErrNotMember) {
		return fmt.Errorf("card %s: locate after removal = %v, want not-member", c, err)
	}
	if hits := d.Find(func(x *cards.Card) bool { return x == c }); len(hits) != 0 {
		return fmt.Errorf("card %s: still findable after removal", c)
	}
	return nil
}
