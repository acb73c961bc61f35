package entity

// RetailPrice is one item of the Azure Retail Prices API response.
type RetailPrice struct {
	CurrencyCode         string  `json:"currencyCode"`
	RetailPriceValue     float64 `json:"retailPrice"`
	UnitPrice            float64 `json:"unitPrice"`
	ArmRegionName        string  `json:"armRegionName"`
	Location             string  `json:"location"`
	EffectiveStartDate   string  `json:"effectiveStartDate"`
	MeterID              string  `json:"meterId"`
	MeterName            string  `json:"meterName"`
	ProductID            string  `json:"productId"`
	SkuID                string  `json:"skuId"`
	ProductName          string  `json:"productName"`
	SkuName              string  `json:"skuName"`
	ArmSkuName           string  `json:"armSkuName"`
	ServiceName          string  `json:"serviceName"`
	ServiceID            string  `json:"serviceId"`
	ServiceFamily        string  `json:"serviceFamily"`
	UnitOfMeasure        string  `json:"unitOfMeasure"`
	Type                 string  `json:"type"`
	IsPrimaryMeterRegion bool    `json:"isPrimaryMeterRegion"`
	ReservationTerm      string  `json:"reservationTerm"`
}

// RetailPricePage is one page of the paginated retail prices response.
type RetailPricePage struct {
	BillingCurrency    string        `json:"BillingCurrency"`
	CustomerEntityType string        `json:"CustomerEntityType"`
	Items              []RetailPrice `json:"Items"`
	NextPageLink       string        `json:"NextPageLink"`
	Count              int           `json:"Count"`
}
