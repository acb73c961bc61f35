package entity

import "time"

// CategoryCost is the cost accumulated by one meter category.
type CategoryCost struct {
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
}

// RunReport summarizes one synthesis run for the console panel and the
// optional report exports.
type RunReport struct {
	SourceFile     string         `json:"source_file"`
	Frequency      Frequency      `json:"frequency"`
	PeriodToken    string         `json:"period_token"`
	RowsRead       int            `json:"rows_read"`
	RowsBackfilled int            `json:"rows_backfilled"`
	RowsOut        int            `json:"rows_out"`
	TotalCost      float64        `json:"total_cost"`
	NewAccounts    int            `json:"new_accounts"`
	NewProfiles    int            `json:"new_profiles"`
	TopCategories  []CategoryCost `json:"top_categories"`
	OutputPath     string         `json:"output_path"`
	Duration       time.Duration  `json:"duration_ns"`
}
