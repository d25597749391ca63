package repository

import (
	"context"
	"errors"
	"time"

	"studiohub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository persists deposit invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice models.Invoice) (string, error)
	GetByRequestID(ctx context.Context, requestID string) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID, status string) error
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo returns an InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo(client *mongo.Client, dbName string) InvoiceRepository {
	return &mongoInvoiceRepo{coll: client.Database(dbName).Collection("invoices")}
}

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, invoice models.Invoice) (string, error) {
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = uuid.New().String()
	}
	invoice.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, invoice); err != nil {
		return "", err
	}
	return invoice.InvoiceID, nil
}

// GetByRequestID returns the invoice raised for a request, if any.
func (r *mongoInvoiceRepo) GetByRequestID(ctx context.Context, requestID string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateStatus moves an invoice to a new status.
func (r *mongoInvoiceRepo) UpdateStatus(ctx context.Context, invoiceID, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"invoice_id": invoiceID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
