package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// referenceSeparator is the delimiter of the reference tables.
const referenceSeparator = ';'

// ReferenceRepositoryImpl implements the append-only reference store.
// Existing rows are scanned, never rewritten; novel keys are appended in
// order of first appearance in the batch.
type ReferenceRepositoryImpl struct{}

// NewReferenceRepository creates a new ReferenceRepository implementation.
func NewReferenceRepository() repository.ReferenceRepository {
	return &ReferenceRepositoryImpl{}
}

// UpdateBillingAccounts appends the accounts whose id is not yet
// persisted and returns how many rows were appended.
func (r *ReferenceRepositoryImpl) UpdateBillingAccounts(path string, accounts []entity.BillingAccountRef) (int, error) {
	existing, err := scanKeys(path)
	if err != nil {
		return 0, err
	}

	var novel [][]string
	for _, account := range accounts {
		if existing[account.ID] {
			continue
		}
		existing[account.ID] = true
		novel = append(novel, []string{account.ID, account.Name})
	}
	return len(novel), appendRows(path, novel)
}

// UpdateBillingProfiles appends the profiles whose id is not yet
// persisted and returns how many rows were appended.
func (r *ReferenceRepositoryImpl) UpdateBillingProfiles(path string, profiles []entity.BillingProfileRef) (int, error) {
	existing, err := scanKeys(path)
	if err != nil {
		return 0, err
	}

	var novel [][]string
	for _, profile := range profiles {
		if existing[profile.ID] {
			continue
		}
		existing[profile.ID] = true
		novel = append(novel, []string{profile.ID, profile.Name, profile.Currency})
	}
	return len(novel), appendRows(path, novel)
}

// scanKeys reads the key column of every persisted row. The header row is
// skipped; a file holding only a header yields an empty set. A missing
// file is a fatal configuration error.
func scanKeys(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewMissingPathError("file", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = referenceSeparator
	reader.FieldsPerRecord = -1

	keys := map[string]bool{}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading reference file %s: %w", path, err)
		}
		if first {
			first = false
			continue
		}
		if len(record) > 0 {
			keys[record[0]] = true
		}
	}
	return keys, nil
}

// appendRows appends the novel rows without touching the existing ones.
func appendRows(path string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening reference file %s for append: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = referenceSeparator
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error appending to reference file %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
