package results

import "bitbucket.org/optimizer/backend/core/entities"

// Storage interface to keep experiment results in a database
type Storage interface {
	// StoreResult saves the outcome of one run
	StoreResult(r *entities.Result) error
	// GetResults returns every run stored for a dataset sorted by run number
	GetResults(dataset string) ([]*entities.Result, error)

	StoreSummary(s *entities.Summary) error
	GetSummary(dataset string) (*entities.Summary, error)
}
