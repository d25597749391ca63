package request

import "studiohub/models"

// ComputeSummary aggregates the selected offerings into a pricing
// summary. All arithmetic is integer, in the catalog's smallest display
// unit, so repeated recomputation can never drift.
func ComputeSummary(selected []models.Offering, discountPercent int, currency string) models.PricingSummary {
	var itemTotal, depositTotal int64
	for _, o := range selected {
		itemTotal += o.Price
		if o.RequiresDeposit {
			depositTotal += o.DepositAmount
		}
	}

	summary := models.PricingSummary{
		ItemTotal:    itemTotal,
		DepositTotal: depositTotal,
		Currency:     currency,
	}

	payable := itemTotal
	if discountPercent > 0 {
		summary.DiscountPercent = discountPercent
		summary.DiscountedTotal = discountHalfUp(itemTotal, discountPercent)
		payable = summary.DiscountedTotal
	}
	summary.GrandTotal = payable + depositTotal
	return summary
}

// discountHalfUp applies a percentage discount with half-up rounding to
// the nearest minor unit.
func discountHalfUp(amount int64, percent int) int64 {
	if percent >= 100 {
		return 0
	}
	return (amount*int64(100-percent) + 50) / 100
}
