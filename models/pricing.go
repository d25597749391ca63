package models

// PricingSummary is derived from the current selection and recomputed
// on every selection change. All amounts are non-negative integers in
// the catalog's smallest display unit (whole Naira).
type PricingSummary struct {
	ItemTotal       int64  `bson:"item_total" json:"itemTotal"`
	DepositTotal    int64  `bson:"deposit_total" json:"depositTotal"`
	DiscountPercent int    `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	DiscountedTotal int64  `bson:"discounted_total,omitempty" json:"discountedTotal,omitempty"`
	GrandTotal      int64  `bson:"grand_total" json:"grandTotal"`
	Currency        string `bson:"currency" json:"currency"`
}
