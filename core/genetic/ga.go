package genetic

import (
	"log/slog"

	"bitbucket.org/optimizer/backend/core/logger"
)

// GA is a generational genetic algorithm over binary gene vectors. It owns its
// random source, so a GA must not be shared between goroutines.
type GA struct {
	objective Objective
	config    Config
	nGenes    int
	random    Random
	logger    *slog.Logger
	observers []Observer
}

// WithLogger sets the logger used to trace generations
func WithLogger(l *slog.Logger) func(*GA) {
	return func(g *GA) {
		g.logger = l
	}
}

// WithObserver registers an observer of the population
func WithObserver(o Observer) func(*GA) {
	return func(g *GA) {
		g.observers = append(g.observers, o)
	}
}

// New validates the configuration against the objective and returns a GA
// ready to run.
func New(o Objective, c Config, r Random, config ...func(*GA)) (*GA, error) {
	if o == nil {
		return nil, c.invalid(ErrorMissingObjective, "objective", nil)
	}
	if r == nil {
		return nil, c.invalid(ErrorMissingRandom, "random", nil)
	}
	nGenes := o.NumGenes()
	if err := c.Validate(nGenes); err != nil {
		return nil, err
	}

	g := &GA{
		objective: o,
		config:    c,
		nGenes:    nGenes,
		random:    r,
		logger:    logger.Discard(),
	}
	for _, fn := range config {
		fn(g)
	}

	return g, nil
}

// Config returns the parameters of the run
func (g *GA) Config() Config {
	return g.config
}

// NumGenes is the length of every gene vector
func (g *GA) NumGenes() int {
	return g.nGenes
}

// Run evolves a random population for the configured number of generations
// and returns the best individual found.
func (g *GA) Run() *Individual {
	p := NewPopulation(g.config.Individuals)
	p.Initialize(g.objective, g.random)
	g.notify(0, p)

	for i := 1; i <= g.config.Generations; i++ {
		g.Step(p)
		g.notify(i, p)
	}

	return p.Best()
}

// Step advances p by one generation in place: recombination, mutation,
// rescoring, elitism and a final rescoring of the merged population.
func (g *GA) Step(p *Population) {
	next := g.Recombine(p)
	flips := Mutate(next, g.config.MutationRate, g.random)
	next.UpdateFitness(g.objective)
	g.Elitism(p, next)
	p.UpdateFitness(g.objective)

	g.logger.Debug("generation completed",
		"best", p.Best().Fitness,
		"avg", p.AvgFitness,
		"worst", p.Worst().Fitness,
		"mutations", flips,
	)
}

// Recombine builds a new population of the same size from pairs drawn by
// roulette selection over p, crossed over with probability CrossoverRate.
// p must be sorted. The returned population is not sorted.
func (g *GA) Recombine(p *Population) *Population {
	weights := SelectionWeights(p)
	n := p.Len()
	next := NewPopulation(n)

	for i := 0; i < n; i += 2 {
		pair := RouletteSelection(p, weights, g.random)
		if g.random.Float64() < g.config.CrossoverRate {
			SinglePointCrossover(pair, g.random)
		}
		for j := 0; j < len(pair) && i+j < n; j++ {
			next.Individuals[i+j] = pair[j]
		}
	}

	return next
}

// Elitism keeps the best Elites() slots of p and overwrites the rest with the
// best individuals of next. Both populations must be sorted.
func (g *GA) Elitism(p, next *Population) {
	nElites := g.config.Elites()
	for i := nElites; i < p.Len(); i++ {
		p.Individuals[i] = next.Individuals[i-nElites]
	}
}

func (g *GA) notify(generation int, p *Population) {
	for _, o := range g.observers {
		o(generation, p)
	}
}
