package handlers

import (
	"github.com/rogerio-castellano/retail-sales-api/internal/models"
	repo "github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

// SalesSearchResult is the /api/sales response envelope.
type SalesSearchResult struct {
	Items      []models.Sale      `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPages int                `json:"totalPages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Filters    repo.FilterOptions `json:"filters"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
