package random

import (
	"context"
	crypto "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// csprngSource adapts crypto/rand into a math/rand.Source64, the same trick
// the teacher project's base.go uses for its package-level Source: it lets a
// math/rand.Rand draw its entropy from the system CSPRNG instead of a seeded
// deterministic stream.
type csprngSource struct{}

func (csprngSource) Seed(int64) {}

func (s csprngSource) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

func (csprngSource) Uint64() (u uint64) {
	var buf [8]byte
	if _, err := crypto.Read(buf[:]); err != nil {
		// crypto/rand failing indicates a broken host; math/rand's own
		// top-level Source still works as a last-ditch resort.
		return uint64(rand.Int63())
	}
	return binary.BigEndian.Uint64(buf[:])
}

// fallback is a local pseudo-random generator seeded from the system CSPRNG,
// constructed fresh per call so no state is shared across requests.
type fallback struct{}

// Fetch implements Source. It never fails, and always reports truly=false.
func (fallback) Fetch(_ context.Context, n, lo, hi int) ([]int, bool) {
	r := rand.New(csprngSource{})
	out := make([]int, n)
	span := hi - lo + 1
	for i := range out {
		out[i] = lo + r.Intn(span)
	}
	return out, false
}
