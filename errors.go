package cards

import "errors"

// Failure modes a caller can check with errors.Is.
var (
	ErrInvalidPile = errors.New("unknown pile")
	ErrEmptyDeck   = errors.New("draw pile is empty")
	ErrNilCard     = errors.New("nil card")
	ErrNotMember   = errors.New("card not owned by this deck")
	ErrNoPile      = errors.New("owned card sits in no pile")
)
