package knapsack

import (
	"errors"
	"fmt"
)

// ErrorUnknownDataset the dataset index is out of range
var ErrorUnknownDataset = errors.New("unknown dataset")

type dataset struct {
	name     string
	capacity float64
	weights  []float64
	values   []float64
	optimum  float64
}

// Low dimensional 0/1 knapsack benchmarks with their known optima
var datasets = []dataset{
	{
		name:     "f1_l-d_kp_10_269",
		capacity: 269,
		weights:  []float64{95, 4, 60, 32, 23, 72, 80, 62, 65, 46},
		values:   []float64{55, 10, 47, 5, 4, 50, 8, 61, 85, 87},
		optimum:  295,
	},
	{
		name:     "f2_l-d_kp_20_878",
		capacity: 878,
		weights:  []float64{92, 4, 43, 83, 84, 68, 92, 82, 6, 44, 32, 18, 56, 83, 25, 96, 70, 48, 14, 58},
		values:   []float64{44, 46, 90, 72, 91, 40, 75, 35, 8, 54, 78, 40, 77, 15, 61, 17, 75, 29, 75, 63},
		optimum:  1024,
	},
	{
		name:     "f3_l-d_kp_4_20",
		capacity: 20,
		weights:  []float64{6, 5, 9, 7},
		values:   []float64{9, 11, 13, 15},
		optimum:  35,
	},
	{
		name:     "f4_l-d_kp_4_11",
		capacity: 11,
		weights:  []float64{2, 4, 6, 7},
		values:   []float64{6, 10, 12, 13},
		optimum:  23,
	},
	{
		name:     "f6_l-d_kp_10_60",
		capacity: 60,
		weights:  []float64{30, 25, 20, 18, 17, 11, 5, 2, 1, 1},
		values:   []float64{20, 18, 17, 15, 15, 10, 5, 3, 1, 1},
		optimum:  52,
	},
	{
		name:     "f7_l-d_kp_7_50",
		capacity: 50,
		weights:  []float64{31, 10, 20, 19, 4, 3, 6},
		values:   []float64{70, 20, 39, 37, 7, 5, 10},
		optimum:  107,
	},
}

// NumDatasets is the number of built-in instances
func NumDatasets() int {
	return len(datasets)
}

// Dataset returns the i-th built-in instance, counting from 1
func Dataset(i int) (*Knapsack, error) {
	if i < 1 || i > len(datasets) {
		return nil, fmt.Errorf("%w: %d", ErrorUnknownDataset, i)
	}
	d := datasets[i-1]

	return New(d.name, d.capacity, d.weights, d.values, d.optimum)
}

// Datasets returns every built-in instance
func Datasets() ([]*Knapsack, error) {
	ks := make([]*Knapsack, 0, len(datasets))
	for i := 1; i <= len(datasets); i++ {
		k, err := Dataset(i)
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}

	return ks, nil
}
