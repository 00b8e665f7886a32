package repo

import (
	"sort"
	"strings"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

// sortKeyMissing reports whether the record lacks a usable key for the field.
// Quantity is never missing for sorting purposes; a nil quantity counts as 0.
func sortKeyMissing(s models.Sale, field SortField) bool {
	switch field {
	case SortByQuantity:
		return false
	case SortByCustomer:
		return s.CustomerName == ""
	default:
		return !s.HasDate()
	}
}

// compareSales returns -1, 0 or 1 for two records under the given field,
// ascending. Direction is applied by the caller.
func compareSales(a, b models.Sale, field SortField) int {
	switch field {
	case SortByQuantity:
		qa, qb := 0, 0
		if a.Quantity != nil {
			qa = *a.Quantity
		}
		if b.Quantity != nil {
			qb = *b.Quantity
		}
		switch {
		case qa < qb:
			return -1
		case qa > qb:
			return 1
		}
		return 0
	case SortByCustomer:
		return strings.Compare(strings.ToLower(a.CustomerName), strings.ToLower(b.CustomerName))
	default:
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	}
}

// sortSales orders records in place, stably, by the given field and direction.
// Records with a missing sort key always come last, whatever the direction,
// so flipping asc/desc never shuffles unparseable rows to the front.
func sortSales(sales []models.Sale, field SortField, dir SortDirection) {
	sort.SliceStable(sales, func(i, j int) bool {
		mi, mj := sortKeyMissing(sales[i], field), sortKeyMissing(sales[j], field)
		if mi || mj {
			return !mi && mj
		}
		cmp := compareSales(sales[i], sales[j], field)
		// Descending is the default; anything but an explicit asc flips.
		if dir != SortAsc {
			cmp = -cmp
		}
		return cmp < 0
	})
}
