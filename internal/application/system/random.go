package system

// Random is the source of every random draw in the simulation.
// *rand.Rand satisfies it; a seeded one makes runs reproducible.
type Random interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int
}
