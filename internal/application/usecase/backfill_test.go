package usecase

import (
	"testing"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func itemsForDays(days ...time.Time) []entity.LineItem {
	items := make([]entity.LineItem, len(days))
	for i, d := range days {
		items[i] = entity.LineItem{ParsedDate: d}
	}
	return items
}

func distinctDays(items []entity.LineItem) int {
	seen := map[time.Time]bool{}
	for _, item := range items {
		seen[item.ParsedDate] = true
	}
	return len(seen)
}

func TestMergeWindowBackfillsToTarget(t *testing.T) {
	current := itemsForDays(
		day(2024, time.June, 1),
		day(2024, time.June, 2),
		day(2024, time.June, 3),
	)
	prior := itemsForDays(
		day(2024, time.May, 25),
		day(2024, time.May, 26),
		day(2024, time.May, 27),
		day(2024, time.May, 28),
		day(2024, time.May, 29),
		day(2024, time.May, 30),
		day(2024, time.May, 31),
	)

	merged, backfilled := MergeWindow(current, prior, 7)

	assert.Equal(t, 4, backfilled)
	require.Len(t, merged, 7)
	assert.Equal(t, 7, distinctDays(merged))

	// Nothing before the cutoff leaks in.
	for _, item := range merged {
		assert.False(t, item.ParsedDate.Before(day(2024, time.May, 28)))
	}
}

func TestMergeWindowKeepsCoveringBatch(t *testing.T) {
	current := itemsForDays(
		day(2024, time.June, 1),
		day(2024, time.June, 15),
		day(2024, time.June, 30),
	)
	prior := itemsForDays(day(2024, time.May, 31))

	merged, backfilled := MergeWindow(current, prior, 30)

	assert.Equal(t, 0, backfilled)
	assert.Equal(t, current, merged)
}

func TestMergeWindowWithoutPriorRows(t *testing.T) {
	current := itemsForDays(
		day(2024, time.June, 1),
		day(2024, time.June, 2),
		day(2024, time.June, 3),
	)

	merged, backfilled := MergeWindow(current, nil, 7)

	assert.Equal(t, 0, backfilled)
	assert.Equal(t, current, merged)
}

func TestMergeWindowSkipsUndatedPriorRows(t *testing.T) {
	current := itemsForDays(day(2024, time.June, 1))
	prior := append(
		itemsForDays(day(2024, time.May, 31)),
		entity.LineItem{Date: "not a date"},
	)

	merged, backfilled := MergeWindow(current, prior, 3)

	assert.Equal(t, 1, backfilled)
	assert.Len(t, merged, 2)
}

func TestBatchDateSpan(t *testing.T) {
	items := itemsForDays(
		day(2024, time.June, 3),
		day(2024, time.June, 1),
		day(2024, time.June, 2),
	)
	min, max, ok := batchDateSpan(items)
	require.True(t, ok)
	assert.Equal(t, day(2024, time.June, 1), min)
	assert.Equal(t, day(2024, time.June, 3), max)

	_, _, ok = batchDateSpan(nil)
	assert.False(t, ok)
}
