package repo

import (
	"sync"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

// InMemorySaleRepository is the in-memory implementation of SaleRepository.
// The dataset is installed once by the loader and never mutated afterwards,
// so concurrent queries need no coordination beyond the swap lock.
type InMemorySaleRepository struct {
	mu     sync.RWMutex
	sales  []models.Sale
	loaded bool
}

// NewInMemorySaleRepository creates an empty, not-yet-loaded repository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{}
}

// SetSales installs the ingested dataset and marks the store loaded.
func (r *InMemorySaleRepository) SetSales(sales []models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = sales
	r.loaded = true
}

// Clear empties the repository. Used by tests.
func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = nil
	r.loaded = false
}

func (r *InMemorySaleRepository) snapshot() ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.loaded {
		return nil, ErrStoreNotLoaded
	}
	return r.sales, nil
}

// All returns the full immutable record collection.
func (r *InMemorySaleRepository) All() ([]models.Sale, error) {
	return r.snapshot()
}

// Count returns the number of loaded records.
func (r *InMemorySaleRepository) Count() (int, error) {
	sales, err := r.snapshot()
	if err != nil {
		return 0, err
	}
	return len(sales), nil
}

// Options returns the distinct selectable values per filterable field,
// computed over the entire store.
func (r *InMemorySaleRepository) Options() (FilterOptions, error) {
	sales, err := r.snapshot()
	if err != nil {
		return FilterOptions{}, err
	}
	return buildFilterOptions(sales), nil
}

// Query runs the full pipeline for one request: filter the store, sort the
// matches, slice out the requested page and attach the option lists. The
// store itself is never mutated; sorting happens on a copied candidate set.
func (r *InMemorySaleRepository) Query(f SaleFilter) (SaleQueryResult, error) {
	sales, err := r.snapshot()
	if err != nil {
		return SaleQueryResult{}, err
	}

	matched := []models.Sale{}
	for _, s := range sales {
		if matchesSale(s, f) {
			matched = append(matched, s)
		}
	}

	sortSales(matched, f.SortBy, f.SortOrder)

	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	start, end, totalPages, page := paginate(len(matched), f.Page, pageSize)

	return SaleQueryResult{
		Items:      matched[start:end],
		TotalItems: len(matched),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		Filters:    buildFilterOptions(sales),
	}, nil
}
