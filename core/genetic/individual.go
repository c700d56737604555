package genetic

// Individual is a candidate solution: a binary gene vector and its cached fitness
type Individual struct {
	Genes   []uint8 `json:"genes"`
	Fitness float64 `json:"fitness"`
}

// NewRandomIndividual flips an unbiased coin for each of the objective's genes
// and scores the result.
func NewRandomIndividual(o Objective, r Random) *Individual {
	genes := make([]uint8, o.NumGenes())
	for i := range genes {
		genes[i] = uint8(r.Intn(2))
	}

	return &Individual{
		Genes:   genes,
		Fitness: o.Objective(genes),
	}
}

// Clone deep copies the genes, the fitness is copied as is
func (ind *Individual) Clone() *Individual {
	genes := make([]uint8, len(ind.Genes))
	copy(genes, ind.Genes)

	return &Individual{
		Genes:   genes,
		Fitness: ind.Fitness,
	}
}

// Compare orders individuals by ascending fitness
func (ind *Individual) Compare(other *Individual) int {
	switch {
	case ind.Fitness < other.Fitness:
		return -1
	case other.Fitness < ind.Fitness:
		return 1
	default:
		return 0
	}
}

func flip(g uint8) uint8 {
	if g == 0 {
		return 1
	}
	return 0
}
