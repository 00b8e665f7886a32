package repo

import (
	"errors"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

// SaleQueryResult is the envelope produced for one query: the page of
// records plus pagination metadata and the filter option lists.
type SaleQueryResult struct {
	Items      []models.Sale
	TotalItems int
	TotalPages int
	Page       int
	PageSize   int
	Filters    FilterOptions
}

// SaleRepository defines read access to the loaded sales dataset.
type SaleRepository interface {
	All() ([]models.Sale, error)
	Count() (int, error)
	Options() (FilterOptions, error)
	Query(f SaleFilter) (SaleQueryResult, error)
}

// ErrStoreNotLoaded is returned when the dataset has not been ingested yet.
var ErrStoreNotLoaded = errors.New("sales dataset not loaded")
