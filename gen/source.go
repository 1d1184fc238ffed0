// Package gen draws domain values uniformly from a resolved interval.
package gen

import (
	"encoding/binary"
	"math/big"
	"math/rand/v2"
)

// Source supplies uniformly distributed 64-bit values. It is satisfied by
// the generators of math/rand/v2 and by *math/rand.Rand.
type Source interface {
	Uint64() uint64
}

const seedStream = 0x9e3779b97f4a7c15

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.PCG {
	return rand.NewPCG(seed, seed^seedStream)
}

// RandomSeed returns a non-zero seed from the runtime's random state.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// Uniform returns an integer in [0, n) with every value equally likely.
// It panics if n is not positive.
func Uniform(src Source, n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		panic("gen: Uniform called with non-positive bound")
	}
	if n.IsUint64() {
		return new(big.Int).SetUint64(rand.New(src).Uint64N(n.Uint64()))
	}

	// Draw just enough bits to cover n-1 and reject values that overshoot.
	bits := new(big.Int).Sub(n, big.NewInt(1)).BitLen()
	words := (bits + 63) / 64
	excess := uint(words*64 - bits)
	buf := make([]byte, words*8)
	v := new(big.Int)
	for {
		for i := range words {
			w := src.Uint64()
			if i == 0 {
				w >>= excess
			}
			binary.BigEndian.PutUint64(buf[i*8:], w)
		}
		if v.SetBytes(buf).Cmp(n) < 0 {
			return v
		}
	}
}
