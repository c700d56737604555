package genetic

import (
	"errors"
	"fmt"
	"math"

	"bitbucket.org/optimizer/backend/core/logger"
)

// Config holds the parameters of a run. They do not change while the
// algorithm is running.
type Config struct {
	Individuals   int     `json:"individuals"`
	Generations   int     `json:"generations"`
	CrossoverRate float64 `json:"crossover_rate"`
	// MutationRate is applied per gene
	MutationRate float64 `json:"mutation_rate"`
	ElitismRate  float64 `json:"elitism_rate"`
}

var (
	// ErrorInvalidConfiguration is wrapped by every configuration error
	ErrorInvalidConfiguration = errors.New("invalid genetic algorithm configuration")
	// ErrorInvalidPopulationSize the population needs at least two individuals to select pairs
	ErrorInvalidPopulationSize = errors.New("the population size can't be less than 2")
	// ErrorInvalidGenerations the number of generations is negative
	ErrorInvalidGenerations = errors.New("the number of generations can't be negative")
	// ErrorInvalidGeneCount single point crossover needs an interior cut point
	ErrorInvalidGeneCount = errors.New("the number of genes can't be less than 2")
	// ErrorInvalidRate a rate is outside of [0, 1]
	ErrorInvalidRate = errors.New("rates must be within [0, 1]")
	// ErrorMissingObjective nil objective
	ErrorMissingObjective = errors.New("missing objective")
	// ErrorMissingRandom nil random source
	ErrorMissingRandom = errors.New("missing random source")
)

// DefaultConfig returns the parameters used by the experiment driver
func DefaultConfig() Config {
	return Config{
		Individuals:   20,
		Generations:   1000,
		CrossoverRate: 0.85,
		MutationRate:  0.03,
		ElitismRate:   0.05,
	}
}

// Validate checks the configuration for a problem with nGenes genes
func (c Config) Validate(nGenes int) error {
	switch {
	case c.Individuals < 2:
		return c.invalid(ErrorInvalidPopulationSize, "individuals", c.Individuals)
	case c.Generations < 0:
		return c.invalid(ErrorInvalidGenerations, "generations", c.Generations)
	case nGenes < 2:
		return c.invalid(ErrorInvalidGeneCount, "genes", nGenes)
	case !validRate(c.CrossoverRate):
		return c.invalid(ErrorInvalidRate, "crossover_rate", c.CrossoverRate)
	case !validRate(c.MutationRate):
		return c.invalid(ErrorInvalidRate, "mutation_rate", c.MutationRate)
	case !validRate(c.ElitismRate):
		return c.invalid(ErrorInvalidRate, "elitism_rate", c.ElitismRate)
	}

	return nil
}

// Elites is the number of individuals carried over unchanged every generation
func (c Config) Elites() int {
	n := int(math.Ceil(c.ElitismRate * float64(c.Individuals)))
	switch {
	case n < 0:
		return 0
	case n > c.Individuals:
		return c.Individuals
	}
	return n
}

func (c Config) invalid(err error, field string, value interface{}) error {
	return &logger.Error{
		Level:   "Error",
		Message: fmt.Sprintf("Invalid value for %s: %v", field, value),
		Err:     fmt.Errorf("%w: %w", ErrorInvalidConfiguration, err),
		Context: c,
	}
}

func validRate(r float64) bool {
	return r >= 0 && r <= 1
}
