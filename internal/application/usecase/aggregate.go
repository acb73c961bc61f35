package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// NormalizeRows applies the per-row field normalization to every line
// item: the SKU replaces the additional-info blob, the reservation type
// replaces the raw product order name, and the FinOps tags found in the
// tags blob replace it in serialized form, projected into one value per
// configured key. No aggregation happens here.
func NormalizeRows(items []entity.LineItem, ex *FieldExtractor, tagKeys []string) []entity.SynthesisRow {
	return NormalizeRowsWithProgress(items, ex, tagKeys, nil)
}

// NormalizeRowsWithProgress is NormalizeRows reporting one tick per
// processed line item.
func NormalizeRowsWithProgress(items []entity.LineItem, ex *FieldExtractor, tagKeys []string, progress types.ProgressHandle) []entity.SynthesisRow {
	rows := make([]entity.SynthesisRow, 0, len(items))
	for _, item := range items {
		item.AdditionalInfo = ex.SKU(item.AdditionalInfo)
		item.ProductOrderName = ReservationType(item.ProductOrderName)
		item.Tags = ex.SerializeTags(ex.Tags(item.Tags))

		values := make([]string, len(tagKeys))
		for i, key := range tagKeys {
			values[i] = ex.ProjectTag(item.Tags, key)
		}

		rows = append(rows, entity.SynthesisRow{Item: item, TagValues: values})
		if progress != nil {
			progress.Increment()
		}
	}
	return rows
}

// GroupRows collapses normalized rows into one row per distinct full
// dimensional key (every retained dimension plus the projected tag
// values), summing Cost into TotalCost. Empty dimension values are
// ordinary key values, never dropped. Every input row contributes to
// exactly one output row. Output is sorted by key for stable files; no
// downstream consumer depends on the order.
func GroupRows(rows []entity.SynthesisRow) []entity.SynthesisRow {
	groups := make(map[string]*entity.SynthesisRow, len(rows))
	keys := make([]string, 0, len(rows))

	for _, row := range rows {
		key := groupKey(&row)
		if g, ok := groups[key]; ok {
			g.TotalCost += row.Item.Cost
			continue
		}
		merged := row
		merged.TotalCost = row.Item.Cost
		groups[key] = &merged
		keys = append(keys, key)
	}

	sort.Strings(keys)
	out := make([]entity.SynthesisRow, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}

// groupKey renders the full dimensional key of a normalized row. Parts
// are length-prefixed so no cell content, delimiters included, can bleed
// into a neighboring field. The price-point columns are formatted, not
// summed: only Cost is a measure.
func groupKey(row *entity.SynthesisRow) string {
	it := &row.Item
	parts := []string{
		it.BillingAccountID, it.BillingPeriodEndDate, it.BillingProfileID,
		it.AccountOwnerID, it.AccountName, it.SubscriptionName,
		it.MeterCategory, it.MeterSubCategory, it.MeterName,
		formatAmount(it.UnitPrice), it.ResourceLocation,
		it.ConsumedService, it.ResourceName, it.AdditionalInfo,
		it.CostCenter, it.ResourceGroup, it.ReservationID,
		it.ReservationName, it.ProductOrderID, it.ProductOrderName,
		it.Term, it.ChargeType, formatAmount(it.PayGPrice),
		it.PricingModel, it.BenefitName,
	}
	parts = append(parts, row.TagValues...)

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strconv.Itoa(len(part)))
		b.WriteByte(':')
		b.WriteString(part)
	}
	return b.String()
}

// formatAmount renders a numeric column the way it is exported: shortest
// decimal form that round-trips.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// topCategories accumulates cost per meter category over the output rows
// and returns the n largest, descending.
func topCategories(rows []entity.SynthesisRow, frequency entity.Frequency, n int) []entity.CategoryCost {
	byCategory := map[string]float64{}
	for _, row := range rows {
		cost := row.Item.Cost
		if frequency == entity.FrequencyMonthly {
			cost = row.TotalCost
		}
		byCategory[row.Item.MeterCategory] += cost
	}

	out := make([]entity.CategoryCost, 0, len(byCategory))
	for category, cost := range byCategory {
		out = append(out, entity.CategoryCost{Category: category, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost > out[j].Cost
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
