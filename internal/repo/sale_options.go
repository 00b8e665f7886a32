package repo

import (
	"sort"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

// FilterOptions holds the distinct selectable values per filterable field,
// computed over the whole dataset so the UI always offers every value
// regardless of the active filter.
type FilterOptions struct {
	Regions        []string `json:"region"`
	Genders        []string `json:"gender"`
	Categories     []string `json:"category"`
	PaymentMethods []string `json:"paymentMethod"`
	Tags           []string `json:"tags"`
}

func distinctSorted(sales []models.Sale, key func(models.Sale) []string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, s := range sales {
		for _, v := range key(s) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func one(key func(models.Sale) string) func(models.Sale) []string {
	return func(s models.Sale) []string { return []string{key(s)} }
}

// buildFilterOptions derives the option lists for the filter controls.
// Tags are split into individual entries rather than listed as raw
// delimited strings.
func buildFilterOptions(sales []models.Sale) FilterOptions {
	return FilterOptions{
		Regions:        distinctSorted(sales, one(func(s models.Sale) string { return s.CustomerRegion })),
		Genders:        distinctSorted(sales, one(func(s models.Sale) string { return s.Gender })),
		Categories:     distinctSorted(sales, one(func(s models.Sale) string { return s.ProductCategory })),
		PaymentMethods: distinctSorted(sales, one(func(s models.Sale) string { return s.PaymentMethod })),
		Tags:           distinctSorted(sales, models.Sale.TagList),
	}
}
