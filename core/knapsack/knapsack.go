package knapsack

import (
	"errors"
)

// Knapsack is a 0/1 knapsack instance. Gene i set to 1 means item i is packed.
type Knapsack struct {
	name     string
	capacity float64
	weights  []float64
	values   []float64
	optimum  float64
	// penalty per unit of excess weight
	rho float64
}

var (
	// ErrorEmptyInstance the instance has no items
	ErrorEmptyInstance = errors.New("the knapsack instance has no items")
	// ErrorMismatchedItems weights and values differ in length
	ErrorMismatchedItems = errors.New("the number of weights and values must match")
	// ErrorInvalidCapacity the capacity is not positive
	ErrorInvalidCapacity = errors.New("the capacity must be positive")
	// ErrorInvalidWeight an item weight is not positive
	ErrorInvalidWeight = errors.New("item weights must be positive")
	// ErrorInvalidValue an item value is negative
	ErrorInvalidValue = errors.New("item values can't be negative")
)

// New validates and builds a knapsack instance. optimum is the best known
// objective value, used for reporting only.
func New(name string, capacity float64, weights, values []float64, optimum float64) (*Knapsack, error) {
	if len(weights) == 0 {
		return nil, ErrorEmptyInstance
	}
	if len(weights) != len(values) {
		return nil, ErrorMismatchedItems
	}
	if capacity <= 0 {
		return nil, ErrorInvalidCapacity
	}

	k := &Knapsack{
		name:     name,
		capacity: capacity,
		weights:  make([]float64, len(weights)),
		values:   make([]float64, len(values)),
		optimum:  optimum,
	}
	copy(k.weights, weights)
	copy(k.values, values)

	for i := range k.weights {
		if k.weights[i] <= 0 {
			return nil, ErrorInvalidWeight
		}
		if k.values[i] < 0 {
			return nil, ErrorInvalidValue
		}
		if r := k.values[i] / k.weights[i]; r > k.rho {
			k.rho = r
		}
	}

	return k, nil
}

// Name identifies the instance
func (k *Knapsack) Name() string {
	return k.name
}

// Capacity is the maximum total weight of a feasible solution
func (k *Knapsack) Capacity() float64 {
	return k.capacity
}

// Optimum is the best known objective value of the instance
func (k *Knapsack) Optimum() float64 {
	return k.optimum
}

// NumGenes is the number of items
func (k *Knapsack) NumGenes() int {
	return len(k.weights)
}

// Evaluate returns the total value and weight of the packed items and
// whether they fit in the knapsack.
func (k *Knapsack) Evaluate(genes []uint8) (value, weight float64, feasible bool) {
	for i, g := range genes {
		if g == 0 {
			continue
		}
		value += k.values[i]
		weight += k.weights[i]
	}

	return value, weight, weight <= k.capacity
}

// Objective is the total value of a feasible solution. Overweight solutions
// score the excess weight negated and scaled by the best value per weight
// ratio of the instance, so they never outrank a feasible solution.
func (k *Knapsack) Objective(genes []uint8) float64 {
	value, weight, feasible := k.Evaluate(genes)
	if feasible {
		return value
	}

	return -k.rho * (weight - k.capacity)
}
