package request

import (
	"context"
	"fmt"
	"strings"

	"studiohub/database/repository"
	"studiohub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DepositIntent is returned to the client so it can collect the deposit
// hold with Stripe's client-side SDK.
type DepositIntent struct {
	InvoiceID    string `json:"invoiceId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentHandler raises deposit holds for confirmed requests.
type PaymentHandler interface {
	CreateDepositIntent(ctx context.Context, flowType, requestID string) (*DepositIntent, error)
}

// StripePaymentHandler implements PaymentHandler with Stripe
// PaymentIntents and records an invoice per hold.
type StripePaymentHandler struct {
	RequestRepo repository.RequestRepository
	InvoiceRepo repository.InvoiceRepository
	Logger      *zap.Logger
	Currency    string
}

// CreateDepositIntent looks up the confirmed request, creates a Stripe
// PaymentIntent for its deposit total, and records a pending invoice.
func (h *StripePaymentHandler) CreateDepositIntent(ctx context.Context, flowType, requestID string) (*DepositIntent, error) {
	record, err := h.RequestRepo.GetByID(ctx, flowType, requestID)
	if err != nil {
		return nil, fmt.Errorf("request %s not found: %w", requestID, err)
	}
	if record.Pricing.DepositTotal <= 0 {
		return nil, fmt.Errorf("request %s requires no deposit", requestID)
	}

	// Catalog amounts are whole Naira; Stripe expects kobo.
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(record.Pricing.DepositTotal * 100),
		Currency: stripe.String(strings.ToLower(h.Currency)),
		Metadata: map[string]string{
			"request_id": record.ID,
			"flow_type":  record.FlowType,
			"kind":       "deposit",
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit payment intent: %w", err)
	}

	invoice := models.Invoice{
		RequestID:     record.ID,
		Amount:        record.Pricing.DepositTotal,
		Currency:      h.Currency,
		PaymentIntent: intent.ID,
		Kind:          "deposit",
		Status:        "pending",
	}
	invoiceID, err := h.InvoiceRepo.Create(ctx, invoice)
	if err != nil {
		// The intent exists; surface the invoice failure but keep going.
		h.Logger.Warn("failed to record deposit invoice",
			zap.String("requestId", record.ID), zap.Error(err))
	}

	return &DepositIntent{
		InvoiceID:    invoiceID,
		ClientSecret: intent.ClientSecret,
		Amount:       record.Pricing.DepositTotal,
		Currency:     h.Currency,
	}, nil
}
