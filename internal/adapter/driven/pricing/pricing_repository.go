package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

const retailPricesURL = "https://prices.azure.com/api/retail/prices?api-version=2023-01-01-preview"

// PricingRepositoryImpl implements the PricingRepository over the Azure
// Retail Prices API.
type PricingRepositoryImpl struct {
	client *http.Client
}

// NewPricingRepository creates a new PricingRepository implementation.
func NewPricingRepository() repository.PricingRepository {
	return &PricingRepositoryImpl{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPrices retrieves every page matching the filter arguments,
// following NextPageLink until it is empty.
func (r *PricingRepositoryImpl) FetchPrices(ctx context.Context, args *types.PriceArgs) ([]entity.RetailPrice, error) {
	pageURL := buildURL(args)

	var prices []entity.RetailPrice
	for pageURL != "" {
		page, err := r.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		prices = append(prices, page.Items...)
		pageURL = page.NextPageLink
	}
	return prices, nil
}

func (r *PricingRepositoryImpl) fetchPage(ctx context.Context, pageURL string) (*entity.RetailPricePage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling the retail prices API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retail prices API returned status %d", resp.StatusCode)
	}

	var page entity.RetailPricePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("error decoding retail prices response: %w", err)
	}
	return &page, nil
}

// buildURL assembles the first page URL: equality terms joined with
// " and " in the $filter parameter, the currency as a plain option.
func buildURL(args *types.PriceArgs) string {
	base := retailPricesURL
	if args.Currency != "" {
		base += "&currencyCode=" + url.QueryEscape(args.Currency)
	}

	var terms []string
	if args.Service != "" {
		terms = append(terms, fmt.Sprintf("serviceName eq '%s'", args.Service))
	}
	if args.Region != "" {
		terms = append(terms, fmt.Sprintf("armRegionName eq '%s'", args.Region))
	}
	if args.SKU != "" {
		terms = append(terms, fmt.Sprintf("armSkuName eq '%s'", args.SKU))
	}
	if len(terms) == 0 {
		return base
	}
	return base + "&$filter=" + url.QueryEscape(strings.Join(terms, " and "))
}
