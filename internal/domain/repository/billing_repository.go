package repository

import (
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
)

// BillingRepository loads detailed usage exports from disk.
type BillingRepository interface {
	// LoadLineItems reads a delimited export file into line items, using
	// the configured separator, character encoding and date format.
	LoadLineItems(path string) ([]entity.LineItem, error)

	// SourceExists reports whether a source file is present.
	SourceExists(path string) bool
}
