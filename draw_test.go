package cards

import (
	"errors"
	"testing"
)

func TestDrawMovesTopCardsToHeld(t *testing.T) {
	a := NewCard(Spades, Ace)
	b := NewCard(Spades, Two)
	c := NewCard(Spades, Three)
	d := New(a, b, c)

	got, err := d.Draw(2)
	if err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("drew %v, want [%s %s]", got, a, b)
	}
	if d.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", d.Remaining())
	}

	held := d.Held()
	if len(held) != 2 || held[0] != a || held[1] != b {
		t.Fatalf("held = %v, want [%s %s]", held, a, b)
	}

	// The next draw from the bottom picks up the last card.
	got, err = d.DrawFromBottom(1)
	if err != nil {
		t.Fatalf("draw from bottom error: %v", err)
	}
	if len(got) != 1 || got[0] != c {
		t.Fatalf("drew %v, want [%s]", got, c)
	}
	held = d.Held()
	if len(held) != 3 || held[2] != c {
		t.Fatalf("held = %v, want the bottom card appended", held)
	}
	if d.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", d.Remaining())
	}
}

func TestDrawFromEmptyDeckFails(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		n    int
	}{
		{name: "positive", n: 1},
		{name: "zero", n: 0},
		{name: "negative", n: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Draw(tt.n); !errors.Is(err, ErrEmptyDeck) {
				t.Fatalf("error = %v, want ErrEmptyDeck", err)
			}
		})
	}

	// A deck can be non-empty and still have nothing to draw.
	d2 := New(NewCard(Spades, Ace))
	if _, err := d2.Draw(1); err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if _, err := d2.Draw(1); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("error = %v, want ErrEmptyDeck once the draw pile is out", err)
	}
}

func TestDrawNonPositiveCountDrawsNothing(t *testing.T) {
	d := New(NewCard(Spades, Ace), NewCard(Hearts, Two))

	for _, n := range []int{0, -3} {
		got, err := d.Draw(n)
		if err != nil {
			t.Fatalf("draw(%d) error: %v", n, err)
		}
		if len(got) != 0 {
			t.Fatalf("draw(%d) = %v, want nothing", n, got)
		}
	}
	if d.Remaining() != 2 || len(d.Held()) != 0 {
		t.Fatalf("empty draws should not move cards")
	}
}

func TestDrawMoreThanRemaining(t *testing.T) {
	d := New(NewCard(Spades, Ace), NewCard(Hearts, Two), NewCard(Clubs, Three))

	got, err := d.Draw(10)
	if err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("drew %d cards, want all 3", len(got))
	}
	if d.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", d.Remaining())
	}
}

func TestDrawFromBottomDealsBottomUp(t *testing.T) {
	a := NewCard(Spades, Ace)
	b := NewCard(Spades, Two)
	c := NewCard(Spades, Three)
	x := NewCard(Spades, Four)
	d := New(a, b, c, x)

	got, err := d.DrawFromBottom(2)
	if err != nil {
		t.Fatalf("draw from bottom error: %v", err)
	}
	// Bottommost card first.
	if len(got) != 2 || got[0] != x || got[1] != c {
		t.Fatalf("drew %v, want [%s %s]", got, x, c)
	}
	if d.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", d.Remaining())
	}
	if top, err := d.Draw(1); err != nil || top[0] != a {
		t.Fatalf("top card = %v (err %v), want %s", top, err, a)
	}
}

func TestDrawToDiscardSkipsHeld(t *testing.T) {
	a := NewCard(Spades, Ace)
	b := NewCard(Hearts, Two)
	d := New(a, b)

	got, err := d.DrawToDiscard(1)
	if err != nil {
		t.Fatalf("draw to discard error: %v", err)
	}
	if len(got) != 1 || got[0] != a {
		t.Fatalf("drew %v, want [%s]", got, a)
	}
	if len(d.Held()) != 0 {
		t.Fatalf("held should stay empty on a draw to discard")
	}
	disc := d.Discarded()
	if len(disc) != 1 || disc[0] != a {
		t.Fatalf("discarded = %v, want [%s]", disc, a)
	}
}

func TestDrawToDiscardFromBottom(t *testing.T) {
	a := NewCard(Spades, Ace)
	b := NewCard(Hearts, Two)
	c := NewCard(Clubs, Three)
	d := New(a, b, c)

	got, err := d.DrawToDiscardFromBottom(2)
	if err != nil {
		t.Fatalf("draw to discard from bottom error: %v", err)
	}
	if len(got) != 2 || got[0] != c || got[1] != b {
		t.Fatalf("drew %v, want [%s %s]", got, c, b)
	}
	disc := d.Discarded()
	if len(disc) != 2 || disc[0] != c || disc[1] != b {
		t.Fatalf("discarded = %v, want [%s %s]", disc, c, b)
	}
	if d.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", d.Remaining())
	}

	if _, err := d.DrawToDiscardFromBottom(1); err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if _, err := d.DrawToDiscard(1); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("error = %v, want ErrEmptyDeck", err)
	}
}
