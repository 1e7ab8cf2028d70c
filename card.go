package cards

import (
	"strconv"

	"github.com/google/uuid"
)

// Suit is the suit letter of a card. The deck never interprets it.
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	NoSuit   Suit = "" // jokers and other suitless cards
)

// String returns the suit symbol, or "" for NoSuit.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return ""
}

// Rank is the face value of a card, Ace low. The deck never interprets it.
type Rank int

const (
	Joker Rank = iota // rank 0
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the face label: "A", "2".."10", "J", "Q", "K", or "JK".
func (r Rank) String() string {
	switch r {
	case Joker:
		return "JK"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is a single playing card. Cards compare by identity, not by face:
// a deck may own several cards with the same suit and rank, and each one
// is tracked separately.
type Card struct {
	Suit Suit
	Rank Rank

	id   uuid.UUID
	deck *Deck
}

// NewCard returns a card with the given face, owned by no deck.
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{Suit: suit, Rank: rank, id: uuid.New()}
}

// ID returns the card's trace ID, fixed at construction.
func (c *Card) ID() uuid.UUID {
	return c.id
}

// Deck returns the deck that currently owns the card, or nil. Deck
// operations keep it in step as cards move between decks.
func (c *Card) Deck() *Deck {
	return c.deck
}

// String renders the card face, e.g. "A♠" or "10♥". Jokers render "JK".
func (c *Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
