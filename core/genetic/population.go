package genetic

import "sort"

// Population is a fixed size collection of individuals. After Initialize and
// UpdateFitness the individuals are sorted by descending fitness.
type Population struct {
	Individuals []*Individual `json:"individuals"`
	AvgFitness  float64       `json:"avg_fitness"`
}

// NewPopulation returns a population of size n with every slot empty
func NewPopulation(n int) *Population {
	return &Population{
		Individuals: make([]*Individual, n),
	}
}

// Clone deep copies every individual of the population
func (p *Population) Clone() *Population {
	c := NewPopulation(len(p.Individuals))
	for i, ind := range p.Individuals {
		c.Individuals[i] = ind.Clone()
	}
	c.AvgFitness = p.AvgFitness

	return c
}

// Len is the number of slots of the population
func (p *Population) Len() int {
	return len(p.Individuals)
}

// Best is the fittest individual, valid while the population is sorted
func (p *Population) Best() *Individual {
	return p.Individuals[0]
}

// Worst is the least fit individual, valid while the population is sorted
func (p *Population) Worst() *Individual {
	return p.Individuals[len(p.Individuals)-1]
}

// Initialize fills every slot with a random individual
func (p *Population) Initialize(o Objective, r Random) {
	var tf float64
	for i := range p.Individuals {
		p.Individuals[i] = NewRandomIndividual(o, r)
		tf += p.Individuals[i].Fitness
	}
	p.Sort()
	p.AvgFitness = tf / float64(len(p.Individuals))
}

// Sort orders the individuals by descending fitness. Ties keep their
// relative order.
func (p *Population) Sort() {
	sort.SliceStable(p.Individuals, func(i, j int) bool {
		return p.Individuals[i].Compare(p.Individuals[j]) > 0
	})
}

// UpdateFitness rescores every individual, recomputes the average and sorts
func (p *Population) UpdateFitness(o Objective) {
	var tf float64
	for _, ind := range p.Individuals {
		ind.Fitness = o.Objective(ind.Genes)
		tf += ind.Fitness
	}
	p.Sort()
	p.AvgFitness = tf / float64(len(p.Individuals))
}

// IsSorted reports whether fitness is non-increasing across the population
func (p *Population) IsSorted() bool {
	for i := 1; i < len(p.Individuals); i++ {
		if p.Individuals[i-1].Fitness < p.Individuals[i].Fitness {
			return false
		}
	}
	return true
}
