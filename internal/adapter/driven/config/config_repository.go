package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implements the ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository creates a new ConfigRepository implementation.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile loads a TOML, YAML or JSON parameter file, applies
// defaults and validates the required entries.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, types.NewMissingPathError("file", filePath)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	applyDefaults(&config)

	if config.PathData == "" {
		return nil, fmt.Errorf("parameter pathData is required in %s", filePath)
	}

	return &config, nil
}

// applyDefaults fills the optional parameters.
func applyDefaults(c *types.Config) {
	if c.PathDetailed == "" {
		c.PathDetailed = "Detailed"
	}
	if c.PathSynthesis == "" {
		c.PathSynthesis = "Synthesis"
	}
	if c.TargetDaily == "" {
		c.TargetDaily = "Daily"
	}
	if c.TargetMonthly == "" {
		c.TargetMonthly = "Monthly"
	}
	if c.BillingAccount == "" {
		c.BillingAccount = "BillingAccount.csv"
	}
	if c.BillingProfile == "" {
		c.BillingProfile = "BillingProfile.csv"
	}
	if c.CSVDetailedSeparator == "" {
		c.CSVDetailedSeparator = ","
	}
	if c.CSVEncoding == "" {
		c.CSVEncoding = "utf-8"
	}
	if c.DateFormat == "" {
		c.DateFormat = "01/02/2006"
	}
	if c.SourceCategory == "" {
		c.SourceCategory = "Detail"
	}
	if c.DailyWindowDays == 0 {
		c.DailyWindowDays = 30
	}
	if c.RetentionDaily == 0 {
		c.RetentionDaily = 31
	}
	if c.RetentionMonthly == 0 {
		c.RetentionMonthly = 12
	}
}
