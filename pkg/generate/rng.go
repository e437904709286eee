// Package generate produces a procedural 19x19 pre-leveling board: a Perlin
// noise field split into two solid color masses, then eroded into natural
// territory pockets and cleaned up so every stone group touches two separate
// territories or one territory of at least four cells.
//
// The generator needs bit-for-bit reproducible noise given a seed, which
// rules out math/rand's algorithm-unspecified Source — it carries its own
// tiny xorshift32 generator instead, same as the leveling core carries its
// own solver.
package generate

// xorshift32 advances a 32-bit xorshift state by one step. A zero state is
// nudged to a fixed nonzero constant first, since xorshift is a fixed point
// at zero.
func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// nextU32 advances *state in place and returns the new value.
func nextU32(state *uint32) uint32 {
	*state = xorshift32(*state)
	return *state
}

// randChance1In reports true with probability 1/n, consuming one draw from
// state regardless of the outcome.
func randChance1In(state *uint32, n uint32) bool {
	return nextU32(state)%n == 0
}
