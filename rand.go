package cards

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// newSeededRand returns the default shuffle source, seeded from
// crypto/rand with the clock as fallback.
func newSeededRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}
