package cards

// suitOrder is new-pack order: spades, hearts, diamonds, clubs.
var suitOrder = []Suit{Spades, Hearts, Diamonds, Clubs}

// Standard returns the 52 cards of a full pack, suit by suit, Ace
// through King. The cards belong to no deck yet.
func Standard() []*Card {
	return build(span(Ace, King))
}

// Piquet returns the 32-card short pack: Ace and Seven through King in
// each suit.
func Piquet() []*Card {
	return build(append([]Rank{Ace}, span(Seven, King)...))
}

// Euchre returns the 24-card short pack: Ace and Nine through King in
// each suit.
func Euchre() []*Card {
	return build(append([]Rank{Ace}, span(Nine, King)...))
}

// Jokers returns n suitless jokers. A non-positive n returns nothing.
func Jokers(n int) []*Card {
	if n <= 0 {
		return nil
	}
	out := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewCard(NoSuit, Joker))
	}
	return out
}

func span(lo, hi Rank) []Rank {
	out := make([]Rank, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

func build(ranks []Rank) []*Card {
	out := make([]*Card, 0, len(suitOrder)*len(ranks))
	for _, s := range suitOrder {
		for _, r := range ranks {
			out = append(out, NewCard(s, r))
		}
	}
	return out
}
