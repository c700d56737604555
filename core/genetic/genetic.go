package genetic

// Objective scores candidate solutions. It is the only boundary between the
// genetic algorithm and the problem being optimized.
type Objective interface {
	// NumGenes is the fixed length of every gene vector for the problem
	NumGenes() int
	// Objective returns the fitness of genes, higher is better. It may be
	// negative when the problem penalizes infeasible solutions.
	Objective(genes []uint8) float64
}

// Random is the source of every random draw made by the algorithm.
// *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Observer is notified with the sorted population after initialization
// (generation 0) and after every completed generation. It must not modify
// the population.
type Observer func(generation int, p *Population)
