package repository

import (
	"context"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// PricingRepository fetches retail prices from the Azure Retail Prices API.
type PricingRepository interface {
	// FetchPrices retrieves all pages matching the filter arguments.
	FetchPrices(ctx context.Context, args *types.PriceArgs) ([]entity.RetailPrice, error)
}
