package usecase

import (
	"context"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// PricesUseCase fetches retail prices and exports them.
type PricesUseCase struct {
	pricingRepo repository.PricingRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
}

// NewPricesUseCase creates a new prices use case.
func NewPricesUseCase(
	pricingRepo repository.PricingRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *PricesUseCase {
	return &PricesUseCase{
		pricingRepo: pricingRepo,
		exportRepo:  exportRepo,
		console:     console,
	}
}

// RunPrices retrieves every retail price page matching the filters and
// exports the result.
func (uc *PricesUseCase) RunPrices(ctx context.Context, args *types.PriceArgs) error {
	status := uc.console.Status("Fetching retail prices...")
	prices, err := uc.pricingRepo.FetchPrices(ctx, args)
	status.Stop()
	if err != nil {
		return err
	}
	uc.console.LogInfo("Retrieved %d retail price items", len(prices))

	if args.ReportName == "" {
		return nil
	}
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportPricesToCSV(prices, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export prices to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported prices to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportPricesToJSON(prices, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export prices to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported prices to JSON: %s", path)
			}
		}
	}
	return nil
}
