package usecase

import (
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
)

// batchDateSpan returns the earliest and latest parsed dates of a batch.
// Rows without a parseable date are ignored; ok is false when no row has
// one.
func batchDateSpan(items []entity.LineItem) (min, max time.Time, ok bool) {
	for _, item := range items {
		if item.ParsedDate.IsZero() {
			continue
		}
		if !ok {
			min, max, ok = item.ParsedDate, item.ParsedDate, true
			continue
		}
		if item.ParsedDate.Before(min) {
			min = item.ParsedDate
		}
		if item.ParsedDate.After(max) {
			max = item.ParsedDate
		}
	}
	return min, max, ok
}

// MergeWindow stitches prior-period rows onto the current batch so the
// result spans targetDays trailing calendar days. When the current batch
// already covers the window, it is returned unchanged. The prior batch is
// filtered to its trailing days ending at its own maximum date; the union
// is raw (a line item present in both files is not expected and not
// deduplicated). Returns the merged batch and the number of rows pulled
// from the prior batch.
func MergeWindow(current, prior []entity.LineItem, targetDays int) ([]entity.LineItem, int) {
	curMin, curMax, ok := batchDateSpan(current)
	if !ok || targetDays <= 0 {
		return current, 0
	}

	deltaDays := int(curMax.Sub(curMin).Hours()/24) + 1
	if deltaDays >= targetDays {
		return current, 0
	}
	needed := targetDays - deltaDays - 1

	_, priorMax, ok := batchDateSpan(prior)
	if !ok {
		return current, 0
	}
	cutoff := priorMax.AddDate(0, 0, -needed)

	merged := make([]entity.LineItem, 0, len(current)+len(prior))
	backfilled := 0
	for _, item := range prior {
		if item.ParsedDate.IsZero() || item.ParsedDate.Before(cutoff) {
			continue
		}
		merged = append(merged, item)
		backfilled++
	}
	merged = append(merged, current...)
	return merged, backfilled
}
