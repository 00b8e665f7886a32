package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

type SortField string

const (
	SortByDate     SortField = "date"
	SortByQuantity SortField = "quantity"
	SortByCustomer SortField = "customer"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultPageSize is used whenever a request carries no usable page size.
const DefaultPageSize = 10

// SaleFilter is the normalized, request-scoped query specification.
// Empty selection slices mean "no restriction", never "match nothing".
// Optional bounds are pointers to distinguish "not set" from zero values.
type SaleFilter struct {
	Search         string
	Regions        []string
	Genders        []string
	Categories     []string
	PaymentMethods []string
	Tags           []string
	MinAge         *int
	MaxAge         *int
	DateFrom       *time.Time
	DateTo         *time.Time
	SortBy         SortField
	SortOrder      SortDirection
	Page           int
	PageSize       int
}

// CacheKey renders the filter as a canonical string usable as a cache key.
// Field order is fixed so equal filters always produce equal keys.
func (f SaleFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("sales:")
	b.WriteString(strings.ToLower(f.Search))
	writeSet := func(vals []string) {
		b.WriteByte('|')
		b.WriteString(strings.Join(vals, ","))
	}
	writeSet(f.Regions)
	writeSet(f.Genders)
	writeSet(f.Categories)
	writeSet(f.PaymentMethods)
	writeSet(f.Tags)
	writeBound := func(v *int) {
		b.WriteByte('|')
		if v != nil {
			fmt.Fprintf(&b, "%d", *v)
		}
	}
	writeBound(f.MinAge)
	writeBound(f.MaxAge)
	writeDate := func(v *time.Time) {
		b.WriteByte('|')
		if v != nil {
			b.WriteString(v.Format("2006-01-02"))
		}
	}
	writeDate(f.DateFrom)
	writeDate(f.DateTo)
	fmt.Fprintf(&b, "|%s|%s|%d|%d", f.SortBy, f.SortOrder, f.Page, f.PageSize)
	return b.String()
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

// matchesSale applies every active predicate of the filter to one record.
// Predicates are AND-combined; a record missing a filtered field is excluded
// whenever that filter is active.
func matchesSale(s models.Sale, f SaleFilter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		name := strings.ToLower(s.CustomerName)
		phone := strings.ToLower(s.PhoneNumber)
		if !strings.Contains(name, term) && !strings.Contains(phone, term) {
			return false
		}
	}

	if len(f.Regions) > 0 && !contains(f.Regions, s.CustomerRegion) {
		return false
	}
	if len(f.Genders) > 0 && !contains(f.Genders, s.Gender) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, s.ProductCategory) {
		return false
	}
	if len(f.PaymentMethods) > 0 && !contains(f.PaymentMethods, s.PaymentMethod) {
		return false
	}

	if len(f.Tags) > 0 {
		hasAny := false
		for _, tag := range s.TagList() {
			if contains(f.Tags, tag) {
				hasAny = true
				break
			}
		}
		if !hasAny {
			return false
		}
	}

	if f.MinAge != nil || f.MaxAge != nil {
		if s.Age == nil {
			return false
		}
		if f.MinAge != nil && *s.Age < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && *s.Age > *f.MaxAge {
			return false
		}
	}

	if f.DateFrom != nil || f.DateTo != nil {
		if !s.HasDate() {
			return false
		}
		if f.DateFrom != nil && s.Date.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && s.Date.After(*f.DateTo) {
			return false
		}
	}

	return true
}
