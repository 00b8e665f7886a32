package handlers

import (
	"context"

	"github.com/rogerio-castellano/retail-sales-api/internal/redissvc"
	repo "github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

// DataLoader triggers (or awaits) the one-time dataset ingestion.
type DataLoader interface {
	Ensure(ctx context.Context) error
}

var (
	saleRepo   repo.SaleRepository
	dataLoader DataLoader
	salesCache *redissvc.Cache
)

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetLoader(l DataLoader) {
	dataLoader = l
}

func SetSalesCache(c *redissvc.Cache) {
	salesCache = c
}
