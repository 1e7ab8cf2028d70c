package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	cards "github.com/ismemang/node-cards"
)

// CardsForPreset maps a pack preset name to a factory producing fresh
// cards for each episode. Jokers are added on top of the base pack; a
// negative count means none.
func CardsForPreset(name string, jokers int) (func() []*cards.Card, error) {
	var base func() []*cards.Card
	switch name {
	case "standard":
		base = cards.Standard
	case "piquet":
		base = cards.Piquet
	case "euchre":
		base = cards.Euchre
	default:
		return nil, fmt.Errorf("unknown pack preset: %q", name)
	}
	if jokers < 0 {
		jokers = 0
	}
	n := jokers
	return func() []*cards.Card {
		return append(base(), cards.Jokers(n)...)
	}, nil
}

// RandomSeed returns a base seed from crypto/rand, or the clock if the
// read fails.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
