package console

import (
	"strings"
	"testing"

	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
)

func TestDisplayCostShareBarsNegativeCost(t *testing.T) {
	// Refund and reservation-credit line items produce negative category
	// sums alongside positive ones.
	c := NewConsole()
	assert.NotPanics(t, func() {
		c.DisplayCostShareBars([]types.CategoryCost{
			{Category: "Virtual Machines", Cost: 10.0},
			{Category: "Refunds", Cost: -2.5},
		})
	})
}

func TestDisplayCostShareBarsOffsettingCosts(t *testing.T) {
	// Costs summing to zero must not divide the share by zero.
	c := NewConsole()
	assert.NotPanics(t, func() {
		c.DisplayCostShareBars([]types.CategoryCost{
			{Category: "Virtual Machines", Cost: 10.0},
			{Category: "Refunds", Cost: -10.0},
		})
	})
}

func TestDisplayCostShareBarsAllNonPositive(t *testing.T) {
	c := NewConsole()
	assert.NotPanics(t, func() {
		c.DisplayCostShareBars([]types.CategoryCost{
			{Category: "Refunds", Cost: -1.0},
			{Category: "Storage", Cost: 0.0},
		})
	})
	assert.NotPanics(t, func() {
		c.DisplayCostShareBars(nil)
	})
}

func TestTableRender(t *testing.T) {
	c := NewConsole()
	table := c.CreateTable()
	table.AddColumn("Source")
	table.AddColumn("Total Cost")
	table.AddRow("Detail_Enrollment_88991105_202405_en.csv", 12.34)

	rendered := table.Render()
	assert.True(t, strings.Contains(rendered, "Source"))
	assert.True(t, strings.Contains(rendered, "12.34"))
}
