package billing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
	"golang.org/x/text/encoding/ianaindex"
)

// BillingRepositoryImpl implements the BillingRepository over delimited
// export files on disk.
type BillingRepositoryImpl struct {
	separator  rune
	encoding   string
	dateFormat string
}

// NewBillingRepository creates a BillingRepository for the configured
// separator, character encoding and date format.
func NewBillingRepository(cfg *types.Config) repository.BillingRepository {
	separator := ','
	if cfg.CSVDetailedSeparator != "" {
		separator = []rune(cfg.CSVDetailedSeparator)[0]
	}
	return &BillingRepositoryImpl{
		separator:  separator,
		encoding:   cfg.CSVEncoding,
		dateFormat: cfg.DateFormat,
	}
}

// SourceExists reports whether a source file is present.
func (r *BillingRepositoryImpl) SourceExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LoadLineItems reads a delimited export file into line items. Columns
// are matched by header name; missing columns coerce to empty values and
// unparseable numerics to zero (type coercion only, no schema validation).
func (r *BillingRepositoryImpl) LoadLineItems(path string) ([]entity.LineItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewMissingPathError("file", path)
	}
	defer f.Close()

	var reader io.Reader = f
	if r.encoding != "" && !strings.EqualFold(r.encoding, "utf-8") {
		enc, err := ianaindex.IANA.Encoding(r.encoding)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unsupported character encoding %q", r.encoding)
		}
		reader = enc.NewDecoder().Reader(f)
	}

	cr := csv.NewReader(reader)
	cr.Comma = r.separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[name] = i
	}

	var items []entity.LineItem
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}

		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		amount := func(name string) float64 {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell(name)), 64)
			if err != nil {
				return 0
			}
			return v
		}

		item := entity.LineItem{
			BillingAccountID:     cell("BillingAccountId"),
			BillingAccountName:   cell("BillingAccountName"),
			BillingPeriodEndDate: cell("BillingPeriodEndDate"),
			BillingProfileID:     cell("BillingProfileId"),
			BillingProfileName:   cell("BillingProfileName"),
			AccountOwnerID:       cell("AccountOwnerId"),
			AccountName:          cell("AccountName"),
			SubscriptionName:     cell("SubscriptionName"),
			Date:                 cell("Date"),
			MeterCategory:        cell("MeterCategory"),
			MeterSubCategory:     cell("MeterSubCategory"),
			MeterName:            cell("MeterName"),
			Cost:                 amount("Cost"),
			UnitPrice:            amount("UnitPrice"),
			BillingCurrency:      cell("BillingCurrency"),
			ResourceLocation:     cell("ResourceLocation"),
			ConsumedService:      cell("ConsumedService"),
			ResourceName:         cell("ResourceName"),
			AdditionalInfo:       cell("AdditionalInfo"),
			Tags:                 cell("Tags"),
			CostCenter:           cell("CostCenter"),
			ResourceGroup:        cell("ResourceGroup"),
			ReservationID:        cell("ReservationId"),
			ReservationName:      cell("ReservationName"),
			ProductOrderID:       cell("ProductOrderId"),
			ProductOrderName:     cell("ProductOrderName"),
			Term:                 cell("Term"),
			ChargeType:           cell("ChargeType"),
			PayGPrice:            amount("PayGPrice"),
			PricingModel:         cell("PricingModel"),
			BenefitName:          cell("benefitName"),
		}
		if d, err := time.Parse(r.dateFormat, item.Date); err == nil {
			item.ParsedDate = d
		}
		items = append(items, item)
	}
	return items, nil
}
