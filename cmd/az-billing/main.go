package main

import (
	"fmt"
	"os"

	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/billing"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/config"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/export"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/pricing"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/reference"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driven/retention"
	"github.com/fparmentier/az-billing-synthesis-go/internal/adapter/driving/cli"
	"github.com/fparmentier/az-billing-synthesis-go/internal/application/usecase"
	"github.com/fparmentier/az-billing-synthesis-go/pkg/console"
	"github.com/fparmentier/az-billing-synthesis-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	referenceRepo := reference.NewReferenceRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	retentionRepo := retention.NewRetentionRepository()
	pricingRepo := pricing.NewPricingRepository()
	consoleImpl := console.NewConsole()

	synthesisUseCase := usecase.NewSynthesisUseCase(
		billing.NewBillingRepository,
		referenceRepo,
		exportRepo,
		configRepo,
		retentionRepo,
		consoleImpl,
	)
	pricesUseCase := usecase.NewPricesUseCase(
		pricingRepo,
		exportRepo,
		consoleImpl,
	)

	app.SetSynthesisUseCase(synthesisUseCase)
	app.SetPricesUseCase(pricesUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
