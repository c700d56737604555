package experiment

import (
	"bitbucket.org/optimizer/backend/core/entities"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the mean, best and worst of the best fitness of each run
// and counts the runs reaching the optimum. fitness must not be empty.
func Summarize(dataset string, optimum float64, fitness []float64) *entities.Summary {
	var hits int
	for _, f := range fitness {
		if f >= optimum {
			hits++
		}
	}

	return &entities.Summary{
		Dataset: dataset,
		Optimum: optimum,
		Runs:    len(fitness),
		Mean:    stat.Mean(fitness, nil),
		Best:    floats.Max(fitness),
		Worst:   floats.Min(fitness),
		Hits:    hits,
	}
}
