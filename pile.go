package cards

// Pile names one of the three ordered piles a deck maintains.
type Pile string

const (
	// PileDraw holds the cards still available to draw. Index 0 is the top.
	PileDraw Pile = "draw"
	// PileHeld holds cards drawn into a hand.
	PileHeld Pile = "held"
	// PileDiscard holds cards taken out of play but still owned by the deck.
	PileDiscard Pile = "discard"
)

func (p Pile) valid() bool {
	switch p {
	case PileDraw, PileHeld, PileDiscard:
		return true
	}
	return false
}

// Location reports where a card currently sits inside a deck.
type Location struct {
	Pile  Pile
	Index int
	Card  *Card
}
