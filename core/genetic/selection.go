package genetic

// SelectionWeights translates the fitness of a sorted population so the worst
// individual weighs exactly 0 and every weight is non-negative. The
// population itself is left untouched.
func SelectionWeights(p *Population) []float64 {
	worst := p.Worst().Fitness
	w := make([]float64, p.Len())
	for i, ind := range p.Individuals {
		w[i] = ind.Fitness - worst
	}

	return w
}

// RouletteSelection picks two distinct individuals of the population with a
// probability proportional to their weight, without replacement, and returns
// independent copies of them. When the weights left to draw from sum to 0 the
// pick is uniform over the remaining candidates.
func RouletteSelection(p *Population, weights []float64, r Random) [2]*Individual {
	var (
		selected [2]*Individual
		skip     = -1
		n        = p.Len()
	)

	for i := 0; i < len(selected); i++ {
		var tf float64
		for j := 0; j < n; j++ {
			if j == skip {
				continue
			}
			tf += weights[j]
		}

		var (
			cf   float64
			x    = r.Float64()
			pick = -1
			last = -1
		)
		for j := 0; j < n; j++ {
			if j == skip {
				continue
			}
			if tf == 0 || weights[j] > 0 {
				last = j
			}
			if tf == 0 {
				cf += 1.0 / float64(n-i)
			} else {
				cf += weights[j] / tf
			}
			if x < cf {
				pick = j
				break
			}
		}
		// Fix for floating point error: the cumulative sum may stop short of 1.
		// last is the last candidate that can be picked, never a zero weight
		// one unless every remaining weight is 0.
		if pick == -1 {
			pick = last
		}

		selected[i] = p.Individuals[pick].Clone()
		skip = pick
	}

	return selected
}
