package usecase

import (
	"testing"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRows(t *testing.T) {
	tagKeys := []string{"CostCenter", "Project"}
	ex := NewFieldExtractor("ServiceType", tagKeys)

	items := []entity.LineItem{
		{
			MeterCategory:    "Virtual Machines",
			AdditionalInfo:   `{"ServiceType":"Standard_D2s_v3","VCPUs":2}`,
			ProductOrderName: "Reserved VM Instance, Standard_D2s_v3",
			Tags:             `{"CostCenter":"42","Project":"apollo"}`,
			Cost:             1.5,
		},
		{
			MeterCategory:  "Storage",
			AdditionalInfo: `{"UsageType":"ComputeHR"}`,
			Tags:           "{}",
			Cost:           0.25,
		},
	}

	rows := NormalizeRows(items, ex, tagKeys)
	require.Len(t, rows, 2)

	assert.Equal(t, "Standard_D2s_v3", rows[0].Item.AdditionalInfo)
	assert.Equal(t, "Reserved VM Instance", rows[0].Item.ProductOrderName)
	assert.Equal(t, "{'CostCenter': '42', 'Project': 'apollo'}", rows[0].Item.Tags)
	assert.Equal(t, []string{"42", "apollo"}, rows[0].TagValues)

	assert.Equal(t, "", rows[1].Item.AdditionalInfo)
	assert.Equal(t, "", rows[1].Item.ProductOrderName)
	assert.Equal(t, "", rows[1].Item.Tags)
	assert.Equal(t, []string{"", ""}, rows[1].TagValues)
}

func TestGroupRowsSumsCostPerKey(t *testing.T) {
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterCategory: "Virtual Machines", MeterName: "D2s v3", Cost: 1.0}, TagValues: []string{"42"}},
		{Item: entity.LineItem{MeterCategory: "Virtual Machines", MeterName: "D2s v3", Cost: 2.5}, TagValues: []string{"42"}},
		{Item: entity.LineItem{MeterCategory: "Virtual Machines", MeterName: "D4s v3", Cost: 4.0}, TagValues: []string{"42"}},
	}

	grouped := GroupRows(rows)
	require.Len(t, grouped, 2)

	byMeter := map[string]float64{}
	for _, row := range grouped {
		byMeter[row.Item.MeterName] = row.TotalCost
	}
	assert.InDelta(t, 3.5, byMeter["D2s v3"], 1e-9)
	assert.InDelta(t, 4.0, byMeter["D4s v3"], 1e-9)
}

func TestGroupRowsExhaustivePartition(t *testing.T) {
	// Every input row lands in exactly one group, so the cost totals match
	// regardless of how the keys shake out.
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterCategory: "A", Cost: 1.0}, TagValues: []string{""}},
		{Item: entity.LineItem{MeterCategory: "A", UnitPrice: 0.1, Cost: 2.0}, TagValues: []string{""}},
		{Item: entity.LineItem{MeterCategory: "B", Cost: 3.0}, TagValues: []string{"x"}},
		{Item: entity.LineItem{Cost: 4.0}, TagValues: []string{""}},
	}

	grouped := GroupRows(rows)

	inputTotal := 0.0
	for _, row := range rows {
		inputTotal += row.Item.Cost
	}
	outputTotal := 0.0
	for _, row := range grouped {
		outputTotal += row.TotalCost
	}
	assert.InDelta(t, inputTotal, outputTotal, 1e-9)
}

func TestGroupRowsEmptyValuesAreValidKeys(t *testing.T) {
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterCategory: "", Cost: 1.0}, TagValues: []string{""}},
		{Item: entity.LineItem{MeterCategory: "", Cost: 2.0}, TagValues: []string{""}},
		{Item: entity.LineItem{MeterCategory: "Storage", Cost: 4.0}, TagValues: []string{""}},
	}

	grouped := GroupRows(rows)
	require.Len(t, grouped, 2)

	byCategory := map[string]float64{}
	for _, row := range grouped {
		byCategory[row.Item.MeterCategory] = row.TotalCost
	}
	assert.InDelta(t, 3.0, byCategory[""], 1e-9)
	assert.InDelta(t, 4.0, byCategory["Storage"], 1e-9)
}

func TestGroupRowsFieldBoundariesDoNotCollide(t *testing.T) {
	// A control character inside a cell must not merge two rows whose
	// dimensional values only line up across a field boundary.
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterCategory: "A\x1fB", MeterSubCategory: "", Cost: 1.0}, TagValues: []string{}},
		{Item: entity.LineItem{MeterCategory: "A", MeterSubCategory: "B", Cost: 1.0}, TagValues: []string{}},
	}

	grouped := GroupRows(rows)
	assert.Len(t, grouped, 2)
}

func TestGroupRowsDistinguishesPricePoints(t *testing.T) {
	// A price change mid-period splits the group: UnitPrice is part of the
	// key, not a summed measure.
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterName: "D2s v3", UnitPrice: 0.1, Cost: 1.0}, TagValues: []string{}},
		{Item: entity.LineItem{MeterName: "D2s v3", UnitPrice: 0.12, Cost: 1.0}, TagValues: []string{}},
	}

	grouped := GroupRows(rows)
	assert.Len(t, grouped, 2)
}

func TestTopCategories(t *testing.T) {
	rows := []entity.SynthesisRow{
		{Item: entity.LineItem{MeterCategory: "Virtual Machines", Cost: 5.0}},
		{Item: entity.LineItem{MeterCategory: "Storage", Cost: 2.0}},
		{Item: entity.LineItem{MeterCategory: "Storage", Cost: 1.0}},
		{Item: entity.LineItem{MeterCategory: "Bandwidth", Cost: 0.5}},
	}

	top := topCategories(rows, entity.FrequencyDaily, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Virtual Machines", top[0].Category)
	assert.InDelta(t, 5.0, top[0].Cost, 1e-9)
	assert.Equal(t, "Storage", top[1].Category)
	assert.InDelta(t, 3.0, top[1].Cost, 1e-9)
}
