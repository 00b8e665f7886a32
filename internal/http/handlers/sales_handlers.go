package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// GetSalesHandler godoc
// @Summary Search sales records
// @Description Paginated, filterable, sortable view over the sales dataset
// @Tags sales
// @Produce json
// @Param search query string false "Substring match on customer name or phone"
// @Param region query string false "Comma-separated region filter"
// @Param gender query string false "Comma-separated gender filter"
// @Param category query string false "Comma-separated product category filter"
// @Param paymentMethod query string false "Comma-separated payment method filter"
// @Param tags query string false "Comma-separated tags; a record matches when it carries any of them"
// @Param ageMin query int false "Minimum age, inclusive"
// @Param ageMax query int false "Maximum age, inclusive"
// @Param dateFrom query string false "Start date (YYYY-MM-DD), inclusive"
// @Param dateTo query string false "End date (YYYY-MM-DD), inclusive"
// @Param sortBy query string false "Sort field (date|quantity|customer)" default(date)
// @Param sortOrder query string false "Sort direction (asc|desc)" default(desc)
// @Param page query int false "1-based page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} SalesSearchResult
// @Failure 500 {object} ErrorResponse
// @Router /api/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	if err := ensureLoaded(r); err != nil {
		writeError(w, http.StatusInternalServerError, "sales data unavailable")
		return
	}

	f := parseSaleFilter(r.URL.Query())

	cacheKey := f.CacheKey()
	if payload, ok := salesCache.Get(r.Context(), cacheKey); ok {
		writeRaw(w, http.StatusOK, payload)
		return
	}

	result, err := saleRepo.Query(f)
	if err != nil {
		log.Printf("sales query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := SalesSearchResult{
		Items:      result.Items,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		PageSize:   result.PageSize,
		Filters:    result.Filters,
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		log.Printf("sales response marshal failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	salesCache.Set(r.Context(), cacheKey, payload)
	writeRaw(w, http.StatusOK, payload)
}

// GetSaleOptionsHandler godoc
// @Summary Filter option lists
// @Description Distinct selectable values per filterable field, over the whole dataset
// @Tags sales
// @Produce json
// @Success 200 {object} repo.FilterOptions
// @Failure 500 {object} ErrorResponse
// @Router /api/sales/options [get]
func GetSaleOptionsHandler(w http.ResponseWriter, r *http.Request) {
	if err := ensureLoaded(r); err != nil {
		writeError(w, http.StatusInternalServerError, "sales data unavailable")
		return
	}

	options, err := saleRepo.Options()
	if err != nil {
		log.Printf("sales options failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Message: "Retail Sales API is running"})
}

func ensureLoaded(r *http.Request) error {
	if dataLoader == nil {
		return nil
	}
	if err := dataLoader.Ensure(r.Context()); err != nil {
		log.Printf("sales data load failed: %v", err)
		return err
	}
	return nil
}
