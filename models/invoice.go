package models

import "time"

// Invoice represents a deposit hold raised against a confirmed request.
type Invoice struct {
	InvoiceID     string    `bson:"invoice_id" json:"invoiceId"`
	RequestID     string    `bson:"request_id" json:"requestId"`
	Amount        int64     `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	PaymentIntent string    `bson:"payment_intent,omitempty" json:"paymentIntent,omitempty"`
	Kind          string    `bson:"kind" json:"kind"`     // e.g. "deposit"
	Status        string    `bson:"status" json:"status"` // "pending", "paid"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
