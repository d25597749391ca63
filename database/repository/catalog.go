package repository

import (
	"context"
	"fmt"

	"studiohub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository exposes read access to the offering catalog. The
// booking flow reads the "services" collection, the rental flow reads
// "equipment"; bundles live in "bundles" for both flows.
type CatalogRepository interface {
	ListOfferings(ctx context.Context, flowType, category string) ([]models.Offering, error)
	ListBundles(ctx context.Context, flowType string) ([]models.Bundle, error)
}

type mongoCatalogRepo struct {
	services  *mongo.Collection
	equipment *mongo.Collection
	bundles   *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo(client *mongo.Client, dbName string) CatalogRepository {
	db := client.Database(dbName)
	return &mongoCatalogRepo{
		services:  db.Collection("services"),
		equipment: db.Collection("equipment"),
		bundles:   db.Collection("bundles"),
	}
}

func (r *mongoCatalogRepo) offeringColl(flowType string) (*mongo.Collection, error) {
	switch flowType {
	case models.FlowBooking:
		return r.services, nil
	case models.FlowRental:
		return r.equipment, nil
	default:
		return nil, fmt.Errorf("unknown flow type %q", flowType)
	}
}

// ListOfferings returns enabled offerings, grouped by category and then
// in catalog insertion order.
func (r *mongoCatalogRepo) ListOfferings(ctx context.Context, flowType, category string) ([]models.Offering, error) {
	coll, err := r.offeringColl(flowType)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"enabled": true}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offerings []models.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

// ListBundles returns enabled bundles for the flow.
func (r *mongoCatalogRepo) ListBundles(ctx context.Context, flowType string) ([]models.Bundle, error) {
	cursor, err := r.bundles.Find(ctx, bson.M{"enabled": true, "flow_type": flowType})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bundles []models.Bundle
	if err := cursor.All(ctx, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}
