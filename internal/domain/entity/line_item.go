package entity

import "time"

// LineItem is one raw row of the detailed usage export: one billed line
// item for one day. Cost and price columns are numeric; everything else is
// kept as text exactly as exported.
type LineItem struct {
	BillingAccountID     string
	BillingAccountName   string
	BillingPeriodEndDate string
	BillingProfileID     string
	BillingProfileName   string
	AccountOwnerID       string
	AccountName          string
	SubscriptionName     string
	Date                 string
	MeterCategory        string
	MeterSubCategory     string
	MeterName            string
	Cost                 float64
	UnitPrice            float64
	BillingCurrency      string
	ResourceLocation     string
	ConsumedService      string
	ResourceName         string
	AdditionalInfo       string
	Tags                 string
	CostCenter           string
	ResourceGroup        string
	ReservationID        string
	ReservationName      string
	ProductOrderID       string
	ProductOrderName     string
	Term                 string
	ChargeType           string
	PayGPrice            float64
	PricingModel         string
	BenefitName          string

	// ParsedDate is the Date column decoded with the configured date
	// format; zero when the column was empty or unparseable.
	ParsedDate time.Time
}
