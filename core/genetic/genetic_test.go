package genetic

// oneMax scores a gene vector by its number of ones
type oneMax struct {
	genes int
}

func (o oneMax) NumGenes() int {
	return o.genes
}

func (o oneMax) Objective(genes []uint8) float64 {
	var f float64
	for _, g := range genes {
		f += float64(g)
	}
	return f
}

// fixedRandom returns the same draws over and over
type fixedRandom struct {
	float float64
	intn  func(n int) int
}

func (r *fixedRandom) Float64() float64 {
	return r.float
}

func (r *fixedRandom) Intn(n int) int {
	if r.intn == nil {
		return 0
	}
	return r.intn(n)
}

// population builds a population from literal gene vectors scored by o
func population(o Objective, genes ...[]uint8) *Population {
	p := NewPopulation(len(genes))
	for i, g := range genes {
		p.Individuals[i] = &Individual{Genes: g, Fitness: o.Objective(g)}
	}
	return p
}
