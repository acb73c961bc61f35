package entity

// Frequency identifies the synthesis artifact class.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyMonthly Frequency = "Monthly"
)

// SynthesisRow is one output row of a synthesis file. Item carries the
// normalized line item (SKU extracted into AdditionalInfo, reservation type
// into ProductOrderName, FinOps tags serialized into Tags); TagValues holds
// the per-tag projected values in configured-key order. TotalCost is only
// meaningful for the monthly (grouped) frequency; the daily frequency
// carries the per-row Cost inside Item.
type SynthesisRow struct {
	Item      LineItem
	TagValues []string
	TotalCost float64
}

// DimensionColumns is the canonical monthly grouping key, in output column
// order. UnitPrice and PayGPrice are price points and group as dimensions;
// only Cost is accumulated. The per-tag columns follow these, then
// Total_Cost.
var DimensionColumns = []string{
	"BillingAccountId", "BillingPeriodEndDate", "BillingProfileId",
	"AccountOwnerId", "AccountName", "SubscriptionName", "MeterCategory",
	"MeterSubCategory", "MeterName", "UnitPrice", "ResourceLocation",
	"ConsumedService", "ResourceName", "AdditionalInfo", "CostCenter",
	"ResourceGroup", "ReservationId", "ReservationName", "ProductOrderId",
	"ProductOrderName", "Term", "ChargeType", "PayGPrice", "PricingModel",
	"benefitName",
}

// DailyColumns is the daily (ungrouped) output column set: the Date column
// replaces BillingPeriodEndDate and the per-row Cost is retained.
var DailyColumns = []string{
	"BillingAccountId", "BillingProfileId", "AccountOwnerId",
	"AccountName", "SubscriptionName", "Date", "MeterCategory",
	"MeterSubCategory", "MeterName", "Cost", "UnitPrice",
	"ResourceLocation", "ConsumedService", "ResourceName",
	"AdditionalInfo", "CostCenter", "ResourceGroup", "ReservationId",
	"ReservationName", "ProductOrderId", "ProductOrderName", "Term",
	"ChargeType", "PayGPrice", "PricingModel", "benefitName",
}
