package genetic

// SinglePointCrossover swaps the genes in [0, point) between the two
// individuals, with point drawn uniformly from [1, nGenes-1]. It returns the
// crossover point.
func SinglePointCrossover(pair [2]*Individual, r Random) int {
	point := r.Intn(len(pair[0].Genes)-1) + 1
	for i := 0; i < point; i++ {
		pair[0].Genes[i], pair[1].Genes[i] = pair[1].Genes[i], pair[0].Genes[i]
	}

	return point
}

// Mutate flips every gene of every individual independently with probability
// rate and returns the number of flipped genes. Fitness is left stale.
func Mutate(p *Population, rate float64, r Random) int {
	var flips int
	for _, ind := range p.Individuals {
		for j := range ind.Genes {
			if r.Float64() < rate {
				ind.Genes[j] = flip(ind.Genes[j])
				flips++
			}
		}
	}

	return flips
}
