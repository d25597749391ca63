package request

import (
	"testing"

	"studiohub/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeSummaryTotals(t *testing.T) {
	selected := []models.Offering{
		{ID: "studio-a", Name: "Studio A", Price: 50000},
		{ID: "drone-kit", Name: "Drone Kit", Price: 150000, RequiresDeposit: true, DepositAmount: 500000},
	}

	summary := ComputeSummary(selected, 0, "NGN")

	assert.Equal(t, int64(200000), summary.ItemTotal)
	assert.Equal(t, int64(500000), summary.DepositTotal)
	assert.Equal(t, int64(700000), summary.GrandTotal)
	assert.Equal(t, 0, summary.DiscountPercent)
	assert.Equal(t, "NGN", summary.Currency)
}

func TestComputeSummaryOrderIndependent(t *testing.T) {
	a := models.Offering{ID: "a", Price: 30000}
	b := models.Offering{ID: "b", Price: 45000, RequiresDeposit: true, DepositAmount: 20000}
	c := models.Offering{ID: "c", Price: 12500}

	first := ComputeSummary([]models.Offering{a, b, c}, 10, "NGN")
	second := ComputeSummary([]models.Offering{c, a, b}, 10, "NGN")

	assert.Equal(t, first, second)
}

func TestComputeSummaryDepositRequiresFlag(t *testing.T) {
	// A deposit amount without the flag must not count.
	selected := []models.Offering{
		{ID: "a", Price: 10000, RequiresDeposit: false, DepositAmount: 99999},
	}

	summary := ComputeSummary(selected, 0, "NGN")

	assert.Equal(t, int64(0), summary.DepositTotal)
	assert.Equal(t, int64(10000), summary.GrandTotal)
}

func TestComputeSummaryDiscountRoundsHalfUp(t *testing.T) {
	// 1001 minus 10% is 900.9, which rounds up to 901.
	summary := ComputeSummary([]models.Offering{{ID: "a", Price: 1001}}, 10, "NGN")

	assert.Equal(t, 10, summary.DiscountPercent)
	assert.Equal(t, int64(901), summary.DiscountedTotal)
	assert.Equal(t, int64(901), summary.GrandTotal)
}

func TestComputeSummaryDiscountExcludesDeposit(t *testing.T) {
	selected := []models.Offering{
		{ID: "a", Price: 100000, RequiresDeposit: true, DepositAmount: 40000},
	}

	summary := ComputeSummary(selected, 25, "NGN")

	assert.Equal(t, int64(100000), summary.ItemTotal)
	assert.Equal(t, int64(75000), summary.DiscountedTotal)
	// Deposit is never discounted.
	assert.Equal(t, int64(40000), summary.DepositTotal)
	assert.Equal(t, int64(115000), summary.GrandTotal)
}

func TestComputeSummaryFullDiscount(t *testing.T) {
	summary := ComputeSummary([]models.Offering{{ID: "a", Price: 5000}}, 100, "NGN")

	assert.Equal(t, int64(0), summary.DiscountedTotal)
	assert.Equal(t, int64(0), summary.GrandTotal)
}

func TestComputeSummaryEmptySelection(t *testing.T) {
	summary := ComputeSummary(nil, 15, "NGN")

	assert.Equal(t, int64(0), summary.ItemTotal)
	assert.Equal(t, int64(0), summary.DiscountedTotal)
	assert.Equal(t, int64(0), summary.GrandTotal)
}
