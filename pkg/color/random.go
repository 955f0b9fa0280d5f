package color

import (
	"math/rand/v2"
	"strings"
	"time"
)

const hexDigits = "0123456789abcdef"

// Generator produces random "#rrggbb" strings. It is not safe for
// concurrent use and is not suitable for anything security related.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator with a fixed seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededGenerator seeds a generator from the wall clock.
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(uint64(time.Now().UnixNano()))
}

// Hex returns '#' followed by six uniformly chosen hex digits.
func (g *Generator) Hex() string {
	var b strings.Builder
	b.Grow(1 + fullLen)
	b.WriteByte('#')
	for i := 0; i < fullLen; i++ {
		b.WriteByte(hexDigits[g.rng.IntN(len(hexDigits))])
	}
	return b.String()
}

// Many returns n random color strings.
func (g *Generator) Many(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Hex()
	}
	return out
}
