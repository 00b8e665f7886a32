package handlers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	repo "github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

// paramAliases maps each canonical query parameter to every accepted
// spelling. Client variants disagree on names (region vs regions, dateFrom
// vs startDate), so all normalization goes through this one table instead
// of scattered fallbacks. The first alias carrying a value wins.
var paramAliases = map[string][]string{
	"search":        {"search"},
	"region":        {"region", "regions"},
	"gender":        {"gender", "genders"},
	"category":      {"category", "categories"},
	"paymentMethod": {"paymentMethod", "paymentMethods"},
	"tags":          {"tags"},
	"ageMin":        {"ageMin", "minAge"},
	"ageMax":        {"ageMax", "maxAge"},
	"dateFrom":      {"dateFrom", "startDate"},
	"dateTo":        {"dateTo", "endDate"},
	"sortBy":        {"sortBy"},
	"sortOrder":     {"sortOrder"},
	"page":          {"page"},
	"pageSize":      {"pageSize"},
}

func paramValues(q url.Values, canonical string) []string {
	for _, alias := range paramAliases[canonical] {
		if vals, ok := q[alias]; ok && len(vals) > 0 {
			return vals
		}
	}
	return nil
}

func paramValue(q url.Values, canonical string) string {
	if vals := paramValues(q, canonical); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// paramList turns a multi-select parameter into a value set. Both
// region=East,West and region=East&region=West are accepted.
func paramList(q url.Values, canonical string) []string {
	var out []string
	for _, raw := range paramValues(q, canonical) {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func paramInt(q url.Values, canonical string) *int {
	raw := strings.TrimSpace(paramValue(q, canonical))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func paramDate(q url.Values, canonical string) *time.Time {
	raw := strings.TrimSpace(paramValue(q, canonical))
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func paramSortBy(q url.Values) repo.SortField {
	switch paramValue(q, "sortBy") {
	case "quantity":
		return repo.SortByQuantity
	case "customer", "customerName":
		return repo.SortByCustomer
	default:
		return repo.SortByDate
	}
}

func paramSortOrder(q url.Values) repo.SortDirection {
	if paramValue(q, "sortOrder") == "asc" {
		return repo.SortAsc
	}
	return repo.SortDesc
}

// parseSaleFilter normalizes raw query parameters into a filter
// specification. Parsing is permissive: a malformed value falls back to its
// default instead of failing the request.
func parseSaleFilter(q url.Values) repo.SaleFilter {
	page := 1
	if v := paramInt(q, "page"); v != nil && *v >= 1 {
		page = *v
	}
	pageSize := repo.DefaultPageSize
	if v := paramInt(q, "pageSize"); v != nil && *v > 0 {
		pageSize = *v
	}

	return repo.SaleFilter{
		Search:         strings.TrimSpace(paramValue(q, "search")),
		Regions:        paramList(q, "region"),
		Genders:        paramList(q, "gender"),
		Categories:     paramList(q, "category"),
		PaymentMethods: paramList(q, "paymentMethod"),
		Tags:           paramList(q, "tags"),
		MinAge:         paramInt(q, "ageMin"),
		MaxAge:         paramInt(q, "ageMax"),
		DateFrom:       paramDate(q, "dateFrom"),
		DateTo:         paramDate(q, "dateTo"),
		SortBy:         paramSortBy(q),
		SortOrder:      paramSortOrder(q),
		Page:           page,
		PageSize:       pageSize,
	}
}
