package types

import "strings"

// Config represents the pipeline parameters that can be loaded from a file.
// It is constructed once at startup and passed read-only to every component.
type Config struct {
	// Directory layout.
	PathData      string `json:"pathData" yaml:"pathData" toml:"pathData"`
	PathDetailed  string `json:"pathDetailed" yaml:"pathDetailed" toml:"pathDetailed"`
	PathSynthesis string `json:"pathSynthesis" yaml:"pathSynthesis" toml:"pathSynthesis"`
	TargetDaily   string `json:"targetDaily" yaml:"targetDaily" toml:"targetDaily"`
	TargetMonthly string `json:"targetMonthly" yaml:"targetMonthly" toml:"targetMonthly"`

	// Reference table files, relative to PathData.
	BillingAccount string `json:"billingAccount" yaml:"billingAccount" toml:"billingAccount"`
	BillingProfile string `json:"billingProfile" yaml:"billingProfile" toml:"billingProfile"`

	// Source file format.
	CSVDetailedSeparator string `json:"csvDetailedSeparator" yaml:"csvDetailedSeparator" toml:"csvDetailedSeparator"`
	CSVEncoding          string `json:"csvEncoding" yaml:"csvEncoding" toml:"csvEncoding"`
	DateFormat           string `json:"dateFormat" yaml:"dateFormat" toml:"dateFormat"`
	SourceCategory       string `json:"sourceCategory" yaml:"sourceCategory" toml:"sourceCategory"`

	// Extraction parameters.
	AdditionalInfo string `json:"additionalInfo" yaml:"additionalInfo" toml:"additionalInfo"`
	FinOpsTags     string `json:"finopsTags" yaml:"finopsTags" toml:"finopsTags"`

	// UniformizeTags propagates each resource's most recent Tags value to
	// all of that resource's rows before extraction.
	UniformizeTags bool `json:"uniformizeTags" yaml:"uniformizeTags" toml:"uniformizeTags"`

	// Daily window and retention.
	DailyWindowDays  int `json:"dailyWindowDays" yaml:"dailyWindowDays" toml:"dailyWindowDays"`
	RetentionDaily   int `json:"retentionDaily" yaml:"retentionDaily" toml:"retentionDaily"`
	RetentionMonthly int `json:"retentionMonthly" yaml:"retentionMonthly" toml:"retentionMonthly"`
}

// TagKeys returns the configured FinOps tag keys in declaration order.
func (c *Config) TagKeys() []string {
	return SplitTagList(c.FinOpsTags)
}

// SplitTagList splits a comma-separated tag key list, trimming whitespace
// and dropping empty entries.
func SplitTagList(list string) []string {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
