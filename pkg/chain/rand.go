package chain

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies the randomness a Generator consumes. Implementations must
// return unbiased values; they are not required to be safe for concurrent
// use, since a Generator owns its Source exclusively.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n). n must be > 0.
	IntN(n int) int
	// Bool returns a uniformly distributed boolean.
	Bool() bool
}

type chachaSource struct {
	r *rand.Rand
}

// NewSource returns the default Source: a ChaCha8 generator seeded from
// crypto/rand.
func NewSource() Source {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand is documented to never fail on supported platforms.
		panic("chain: crypto/rand unavailable: " + err.Error())
	}
	return &chachaSource{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce identical draw sequences, making generation reproducible.
func NewSeededSource(seed uint64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &chachaSource{r: rand.New(rand.NewChaCha8(key))}
}

func (s *chachaSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *chachaSource) Bool() bool {
	return s.r.IntN(2) == 1
}
