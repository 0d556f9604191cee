package rng

// Generator provides a simple random number.
// Both Crypto and a seeded *math/rand.Rand satisfy it; tests and replayable
// games use the latter.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
