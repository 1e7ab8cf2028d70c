// Package cards implements a playing-card deck built around three ordered
// piles: draw, held, and discard. Every card a deck owns sits in exactly
// one pile, and every operation either preserves that or fails before
// touching anything. Cards are identity objects; the deck never assigns
// meaning to suits or ranks.
package cards

import (
	"fmt"
	"math/rand"
)

// Deck owns a set of cards split across the draw, held, and discard
// piles. The zero value is not usable; build decks with New or
// NewWithRand.
//
// A Deck is not safe for concurrent use. Merge mutates both decks and
// assumes the caller owns both for the duration.
type Deck struct {
	rng *rand.Rand

	all     map[*Card]struct{}
	draw    []*Card // index 0 is the top
	held    []*Card
	discard []*Card
}

// New returns a deck owning the given cards, all in the draw pile in the
// given order. Nil entries are skipped. The shuffle source is freshly
// seeded; use NewWithRand to control it.
func New(cs ...*Card) *Deck {
	return NewWithRand(nil, cs...)
}

// NewWithRand is New with a caller-supplied shuffle source. A nil rng
// falls back to a seeded default.
func NewWithRand(rng *rand.Rand, cs ...*Card) *Deck {
	if rng == nil {
		rng = newSeededRand()
	}
	d := &Deck{
		rng: rng,
		all: make(map[*Card]struct{}, len(cs)),
	}
	for _, c := range cs {
		if c == nil {
			continue
		}
		d.place(c, PileDraw)
	}
	return d
}

// Add puts a card at the bottom of the draw pile. See AddTo.
func (d *Deck) Add(c *Card) error {
	return d.AddTo(c, PileDraw)
}

// AddTo puts a card at the end of the named pile and makes this deck its
// owner, updating the card's back-reference. A card owned by another
// deck is removed from that deck first; a card this deck already owns is
// relocated. The pile name is checked before the card.
func (d *Deck) AddTo(c *Card, pile Pile) error {
	if !pile.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPile, string(pile))
	}
	if c == nil {
		return ErrNilCard
	}
	d.place(c, pile)
	return nil
}

// Remove takes a card out of the deck entirely: membership, pile slot,
// and back-reference. Removing a card the deck does not own is a no-op,
// so cards held by other decks are left untouched.
func (d *Deck) Remove(c *Card) {
	if c == nil {
		return
	}
	if _, ok := d.all[c]; !ok {
		return
	}
	d.pull(c)
	delete(d.all, c)
	c.deck = nil
}

// Merge moves every card of other into the draw pile. See MergeTo.
func (d *Deck) Merge(other *Deck) error {
	return d.MergeTo(other, PileDraw)
}

// MergeTo moves every card owned by other into this deck's named pile,
// leaving other empty. Transfer order is unspecified. The membership of
// other is snapshotted first, so merging a deck into itself just gathers
// its cards into the one pile. A nil other is a no-op.
func (d *Deck) MergeTo(other *Deck, pile Pile) error {
	if !pile.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPile, string(pile))
	}
	if other == nil {
		return nil
	}
	moving := make([]*Card, 0, len(other.all))
	for c := range other.all {
		moving = append(moving, c)
	}
	for _, c := range moving {
		other.Remove(c)
		d.place(c, pile)
	}
	return nil
}

// Draw removes up to n cards from the top of the draw pile and appends
// them to the held pile. The drawn cards come back in draw order. It
// fails with ErrEmptyDeck when the draw pile is already empty, whatever
// n is; a negative or zero n on a non-empty pile draws nothing.
func (d *Deck) Draw(n int) ([]*Card, error) {
	drawn, err := d.takeTop(n)
	if err != nil {
		return nil, err
	}
	d.held = append(d.held, drawn...)
	return drawn, nil
}

// DrawFromBottom is Draw dealing from the underside: cards come off the
// bottom of the draw pile, bottommost first.
func (d *Deck) DrawFromBottom(n int) ([]*Card, error) {
	drawn, err := d.takeBottom(n)
	if err != nil {
		return nil, err
	}
	d.held = append(d.held, drawn...)
	return drawn, nil
}

// DrawToDiscard is Draw with the discard pile as destination: the drawn
// cards never pass through the held pile.
func (d *Deck) DrawToDiscard(n int) ([]*Card, error) {
	drawn, err := d.takeTop(n)
	if err != nil {
		return nil, err
	}
	d.discard = append(d.discard, drawn...)
	return drawn, nil
}

// DrawToDiscardFromBottom is DrawFromBottom with the discard pile as
// destination.
func (d *Deck) DrawToDiscardFromBottom(n int) ([]*Card, error) {
	drawn, err := d.takeBottom(n)
	if err != nil {
		return nil, err
	}
	d.discard = append(d.discard, drawn...)
	return drawn, nil
}

// Discard moves the given cards from the draw or held pile onto the
// discard pile, in argument order. A card already discarded stays where
// it is. The first nil card fails with ErrNilCard and the first card not
// owned by this deck fails with ErrNotMember; cards processed before the
// failure stay discarded.
func (d *Deck) Discard(cs ...*Card) error {
	for _, c := range cs {
		if c == nil {
			return ErrNilCard
		}
		if _, ok := d.all[c]; !ok {
			return ErrNotMember
		}
		// Only draw and held feed the discard pile.
		before := len(d.draw) + len(d.held)
		d.draw = cut(d.draw, c)
		d.held = cut(d.held, c)
		if len(d.draw)+len(d.held) != before {
			d.discard = append(d.discard, c)
		}
	}
	return nil
}

// DiscardAllHeld moves the whole held pile onto the discard pile,
// preserving order.
func (d *Deck) DiscardAllHeld() {
	d.discard = append(d.discard, d.held...)
	d.held = nil
}

// Locate reports the pile and position of a card, searching draw, then
// held, then discard. An owned card absent from all three piles fails
// with ErrNoPile; that is a bug in this package, not a caller mistake.
func (d *Deck) Locate(c *Card) (Location, error) {
	if c == nil {
		return Location{}, ErrNilCard
	}
	if _, ok := d.all[c]; !ok {
		return Location{}, ErrNotMember
	}
	for _, p := range []struct {
		name  Pile
		cards []*Card
	}{
		{PileDraw, d.draw},
		{PileHeld, d.held},
		{PileDiscard, d.discard},
	} {
		for i, pc := range p.cards {
			if pc == c {
				return Location{Pile: p.name, Index: i, Card: c}, nil
			}
		}
	}
	return Location{}, ErrNoPile
}

// Find returns the owned cards for which match returns true, in
// unspecified order. A nil match returns nothing.
func (d *Deck) Find(match func(*Card) bool) []*Card {
	if match == nil {
		return nil
	}
	var out []*Card
	for c := range d.all {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

// ShuffleAll gathers every owned card back into the draw pile and
// shuffles it. Held and discard end up empty.
func (d *Deck) ShuffleAll() {
	d.draw = append(d.draw, d.held...)
	d.draw = append(d.draw, d.discard...)
	d.held = nil
	d.discard = nil
	d.shuffle(d.draw)
}

// ShuffleRemaining shuffles the draw pile in place. Held and discard are
// untouched.
func (d *Deck) ShuffleRemaining() {
	d.shuffle(d.draw)
}

// ShuffleDiscard shuffles the discard pile and slides it under the draw
// pile: the cards already in the draw pile keep their order on top.
func (d *Deck) ShuffleDiscard() {
	d.shuffle(d.discard)
	d.draw = append(d.draw, d.discard...)
	d.discard = nil
}

// ShuffleDeckAndDiscard folds the discard pile into the draw pile and
// shuffles the combined result. Held is untouched.
func (d *Deck) ShuffleDeckAndDiscard() {
	d.draw = append(d.draw, d.discard...)
	d.discard = nil
	d.shuffle(d.draw)
}

// Len returns how many cards the deck owns across all piles.
func (d *Deck) Len() int {
	return len(d.all)
}

// Remaining returns how many cards are left in the draw pile.
func (d *Deck) Remaining() int {
	return len(d.draw)
}

// Held returns a copy of the held pile in order.
func (d *Deck) Held() []*Card {
	return append([]*Card{}, d.held...)
}

// Discarded returns a copy of the discard pile in order.
func (d *Deck) Discarded() []*Card {
	return append([]*Card{}, d.discard...)
}

// place makes c a member of d at the end of the named pile, stealing it
// from any previous owner and relocating it if d already holds it.
func (d *Deck) place(c *Card, pile Pile) {
	if c.deck != nil && c.deck != d {
		c.deck.Remove(c)
	}
	if _, ok := d.all[c]; ok {
		d.pull(c)
	}
	c.deck = d
	d.all[c] = struct{}{}
	switch pile {
	case PileDraw:
		d.draw = append(d.draw, c)
	case PileHeld:
		d.held = append(d.held, c)
	case PileDiscard:
		d.discard = append(d.discard, c)
	}
}

// pull removes c from whichever pile holds it.
func (d *Deck) pull(c *Card) {
	d.draw = cut(d.draw, c)
	d.held = cut(d.held, c)
	d.discard = cut(d.discard, c)
}

// takeTop detaches up to n cards from the top of the draw pile.
func (d *Deck) takeTop(n int) ([]*Card, error) {
	if len(d.draw) == 0 {
		return nil, ErrEmptyDeck
	}
	if n < 0 {
		n = 0
	}
	if n > len(d.draw) {
		n = len(d.draw)
	}
	out := append([]*Card{}, d.draw[:n]...)
	d.draw = d.draw[n:]
	return out, nil
}

// takeBottom detaches up to n cards from the bottom of the draw pile,
// reversed so the bottommost card comes first.
func (d *Deck) takeBottom(n int) ([]*Card, error) {
	if len(d.draw) == 0 {
		return nil, ErrEmptyDeck
	}
	if n < 0 {
		n = 0
	}
	if n > len(d.draw) {
		n = len(d.draw)
	}
	out := make([]*Card, 0, n)
	for i := len(d.draw) - 1; i >= len(d.draw)-n; i-- {
		out = append(out, d.draw[i])
	}
	d.draw = d.draw[:len(d.draw)-n]
	return out, nil
}

func (d *Deck) shuffle(pile []*Card) {
	d.rng.Shuffle(len(pile), func(i, j int) { pile[i], pile[j] = pile[j], pile[i] })
}

// cut deletes the first identity match of c from pile, preserving order.
func cut(pile []*Card, c *Card) []*Card {
	for i, pc := range pile {
		if pc == c {
			return append(pile[:i], pile[i+1:]...)
		}
	}
	return pile
}
