package entities

// Result is the outcome of a single genetic algorithm run on a dataset
type Result struct {
	ID           string  `json:"id"`
	Dataset      string  `json:"dataset"`
	Run          int     `json:"run"`
	Seed         int64   `json:"seed"`
	Fitness      float64 `json:"fitness"`
	Genes        []uint8 `json:"genes"`
	Optimum      float64 `json:"optimum"`
	CreationTime string  `json:"creation_time"`
}

// Summary aggregates the best fitness of repeated runs on a dataset
type Summary struct {
	Dataset      string  `json:"dataset"`
	Optimum      float64 `json:"optimum"`
	Runs         int     `json:"runs"`
	Mean         float64 `json:"mean"`
	Best         float64 `json:"best"`
	Worst        float64 `json:"worst"`
	Hits         int     `json:"hits"`
	CreationTime string  `json:"creation_time"`
}
