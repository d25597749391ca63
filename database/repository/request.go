package repository

import (
	"context"
	"fmt"
	"time"

	"studiohub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestRepository persists confirmed request records. Booking records
// go to "bookings", rental records to "equipment_rentals".
type RequestRepository interface {
	Create(ctx context.Context, record *models.RequestRecord) (string, error)
	GetByID(ctx context.Context, flowType, id string) (*models.RequestRecord, error)
}

type mongoRequestRepo struct {
	bookings *mongo.Collection
	rentals  *mongo.Collection
}

// NewMongoRequestRepo returns a RequestRepository backed by MongoDB.
func NewMongoRequestRepo(client *mongo.Client, dbName string) RequestRepository {
	db := client.Database(dbName)
	return &mongoRequestRepo{
		bookings: db.Collection("bookings"),
		rentals:  db.Collection("equipment_rentals"),
	}
}

func (r *mongoRequestRepo) coll(flowType string) (*mongo.Collection, error) {
	switch flowType {
	case models.FlowBooking:
		return r.bookings, nil
	case models.FlowRental:
		return r.rentals, nil
	default:
		return nil, fmt.Errorf("unknown flow type %q", flowType)
	}
}

// Create inserts a new request record and returns its ID.
func (r *mongoRequestRepo) Create(ctx context.Context, record *models.RequestRecord) (string, error) {
	coll, err := r.coll(record.FlowType)
	if err != nil {
		return "", err
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	if record.Status == "" {
		record.Status = "pending"
	}

	if _, err := coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a request record by its ID.
func (r *mongoRequestRepo) GetByID(ctx context.Context, flowType, id string) (*models.RequestRecord, error) {
	coll, err := r.coll(flowType)
	if err != nil {
		return nil, err
	}
	var record models.RequestRecord
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
