package repository

import (
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
)

// ReferenceRepository maintains the append-only reference tables. Existing
// rows are never rewritten: the store scans the keys already persisted and
// appends only the novel ones, in order of first appearance in the batch.
type ReferenceRepository interface {
	// UpdateBillingAccounts appends accounts whose id is not yet in the
	// file and returns how many rows were appended.
	UpdateBillingAccounts(path string, accounts []entity.BillingAccountRef) (int, error)

	// UpdateBillingProfiles appends profiles whose id is not yet in the
	// file and returns how many rows were appended.
	UpdateBillingProfiles(path string, profiles []entity.BillingProfileRef) (int, error)
}
