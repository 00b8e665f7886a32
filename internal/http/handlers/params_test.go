package handlers

import (
	"net/url"
	"reflect"
	"testing"

	repo "github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

func query(raw string) url.Values {
	q, err := url.ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return q
}

func TestParseSaleFilter_Defaults(t *testing.T) {
	f := parseSaleFilter(query(""))

	if f.SortBy != repo.SortByDate || f.SortOrder != repo.SortDesc {
		t.Errorf("expected date desc default sort, got %s %s", f.SortBy, f.SortOrder)
	}
	if f.Page != 1 || f.PageSize != repo.DefaultPageSize {
		t.Errorf("expected page 1 size %d, got %d %d", repo.DefaultPageSize, f.Page, f.PageSize)
	}
	if f.MinAge != nil || f.MaxAge != nil || f.DateFrom != nil || f.DateTo != nil {
		t.Error("expected no bounds by default")
	}
	if len(f.Regions) != 0 || len(f.Tags) != 0 {
		t.Error("expected empty selection sets by default")
	}
}

func TestParseSaleFilter_Lists(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "region=East,West", []string{"East", "West"}},
		{"repeated param", "region=East&region=West", []string{"East", "West"}},
		{"alias regions", "regions=East", []string{"East"}},
		{"blank entries dropped", "region=East,,%20", []string{"East"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseSaleFilter(query(tt.raw))
			if !reflect.DeepEqual(f.Regions, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, f.Regions)
			}
		})
	}
}

func TestParseSaleFilter_Aliases(t *testing.T) {
	f := parseSaleFilter(query("minAge=18&maxAge=65&startDate=2023-01-01&endDate=2023-12-31"))

	if f.MinAge == nil || *f.MinAge != 18 {
		t.Errorf("minAge alias not honored: %v", f.MinAge)
	}
	if f.MaxAge == nil || *f.MaxAge != 65 {
		t.Errorf("maxAge alias not honored: %v", f.MaxAge)
	}
	if f.DateFrom == nil || f.DateFrom.Format("2006-01-02") != "2023-01-01" {
		t.Errorf("startDate alias not honored: %v", f.DateFrom)
	}
	if f.DateTo == nil || f.DateTo.Format("2006-01-02") != "2023-12-31" {
		t.Errorf("endDate alias not honored: %v", f.DateTo)
	}

	// Canonical names win over aliases when both exist.
	f = parseSaleFilter(query("ageMin=21&minAge=18"))
	if f.MinAge == nil || *f.MinAge != 21 {
		t.Errorf("expected canonical ageMin=21 to win, got %v", f.MinAge)
	}
}

func TestParseSaleFilter_MalformedValuesDefaulted(t *testing.T) {
	f := parseSaleFilter(query("ageMin=abc&dateFrom=not-a-date&sortBy=bogus&sortOrder=sideways&page=x&pageSize=-5"))

	if f.MinAge != nil {
		t.Errorf("malformed ageMin should be dropped, got %v", *f.MinAge)
	}
	if f.DateFrom != nil {
		t.Errorf("malformed dateFrom should be dropped, got %v", f.DateFrom)
	}
	if f.SortBy != repo.SortByDate {
		t.Errorf("unknown sortBy should default to date, got %s", f.SortBy)
	}
	if f.SortOrder != repo.SortDesc {
		t.Errorf("unknown sortOrder should default to desc, got %s", f.SortOrder)
	}
	if f.Page != 1 {
		t.Errorf("malformed page should default to 1, got %d", f.Page)
	}
	if f.PageSize != repo.DefaultPageSize {
		t.Errorf("non-positive pageSize should default to %d, got %d", repo.DefaultPageSize, f.PageSize)
	}
}

func TestParseSaleFilter_SortVariants(t *testing.T) {
	if f := parseSaleFilter(query("sortBy=customerName")); f.SortBy != repo.SortByCustomer {
		t.Errorf("customerName should map to customer sort, got %s", f.SortBy)
	}
	if f := parseSaleFilter(query("sortBy=quantity&sortOrder=asc")); f.SortBy != repo.SortByQuantity || f.SortOrder != repo.SortAsc {
		t.Errorf("expected quantity asc, got %s %s", f.SortBy, f.SortOrder)
	}
}
