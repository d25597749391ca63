package models

// Offering is a selectable priced item: a studio service, an add-on,
// or a rental equipment unit. All amounts are whole Naira.
type Offering struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	Category        string `bson:"category" json:"category"`
	Price           int64  `bson:"price" json:"price"`
	RequiresDeposit bool   `bson:"requires_deposit" json:"requiresDeposit"`
	DepositAmount   int64  `bson:"deposit_amount,omitempty" json:"depositAmount,omitempty"`
	Enabled         bool   `bson:"enabled" json:"enabled"`
}

// Bundle is a named group of offerings sold together at a percentage discount.
type Bundle struct {
	ID              string   `bson:"id" json:"id"`
	FlowType        string   `bson:"flow_type" json:"flowType"`
	Name            string   `bson:"name" json:"name"`
	OfferingIDs     []string `bson:"offering_ids" json:"offeringIds"`
	DiscountPercent int      `bson:"discount_percent" json:"discountPercent"`
	Enabled         bool     `bson:"enabled" json:"enabled"`
}
