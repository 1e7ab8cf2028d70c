package cards

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		name string
		suit Suit
		rank Rank
		want string
	}{
		{name: "ace of spades", suit: Spades, rank: Ace, want: "A♠"},
		{name: "ten of hearts", suit: Hearts, rank: Ten, want: "10♥"},
		{name: "queen of diamonds", suit: Diamonds, rank: Queen, want: "Q♦"},
		{name: "two of clubs", suit: Clubs, rank: Two, want: "2♣"},
		{name: "joker", suit: NoSuit, rank: Joker, want: "JK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCard(tt.suit, tt.rank).String()
			if got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCardsCompareByIdentity(t *testing.T) {
	a := NewCard(Spades, Ace)
	b := NewCard(Spades, Ace)

	if a == b {
		t.Fatalf("two cards with the same face should be distinct")
	}

	// A deck keeps both copies.
	d := New(a, b)
	if d.Len() != 2 {
		t.Fatalf("deck size = %d, want 2", d.Len())
	}
	if a.ID() == b.ID() {
		t.Fatalf("trace IDs should differ per card")
	}
}

func TestCardDeckBackReference(t *testing.T) {
	c := NewCard(Hearts, Five)
	if c.Deck() != nil {
		t.Fatalf("fresh card should belong to no deck")
	}

	d := New(c)
	if c.Deck() != d {
		t.Fatalf("card should point at its owning deck")
	}

	d.Remove(c)
	if c.Deck() != nil {
		t.Fatalf("removed card should point at no deck")
	}
}
