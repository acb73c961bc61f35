package repository

import (
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// ConfigRepository loads the parameter file.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
