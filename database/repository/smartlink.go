package repository

import (
	"context"
	"errors"
	"time"

	"studiohub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SmartLinkRepository persists link-in-bio pages and their buttons.
type SmartLinkRepository interface {
	CreatePage(ctx context.Context, page models.SmartLink) (string, error)
	GetPageByID(ctx context.Context, id string) (*models.SmartLink, error)
	GetPageBySlug(ctx context.Context, slug string) (*models.SmartLink, error)
	UpdatePage(ctx context.Context, page *models.SmartLink) error
	DeletePage(ctx context.Context, id string) error

	AddButton(ctx context.Context, button models.LinkButton) (string, error)
	ListButtons(ctx context.Context, linkID string) ([]models.LinkButton, error)
	ReorderButtons(ctx context.Context, linkID string, buttonIDs []string) error
	DeleteButton(ctx context.Context, linkID, buttonID string) error
	IncrementClicks(ctx context.Context, linkID, buttonID string) error
}

type mongoSmartLinkRepo struct {
	pages   *mongo.Collection
	buttons *mongo.Collection
}

// NewMongoSmartLinkRepo returns a SmartLinkRepository backed by MongoDB.
func NewMongoSmartLinkRepo(client *mongo.Client, dbName string) SmartLinkRepository {
	db := client.Database(dbName)
	return &mongoSmartLinkRepo{
		pages:   db.Collection("smart_links"),
		buttons: db.Collection("link_buttons"),
	}
}

func (r *mongoSmartLinkRepo) CreatePage(ctx context.Context, page models.SmartLink) (string, error) {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	page.CreatedAt = time.Now()
	page.UpdatedAt = page.CreatedAt

	if _, err := r.pages.InsertOne(ctx, page); err != nil {
		return "", err
	}
	return page.ID, nil
}

func (r *mongoSmartLinkRepo) GetPageByID(ctx context.Context, id string) (*models.SmartLink, error) {
	var page models.SmartLink
	if err := r.pages.FindOne(ctx, bson.M{"id": id}).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *mongoSmartLinkRepo) GetPageBySlug(ctx context.Context, slug string) (*models.SmartLink, error) {
	var page models.SmartLink
	if err := r.pages.FindOne(ctx, bson.M{"slug": slug, "enabled": true}).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *mongoSmartLinkRepo) UpdatePage(ctx context.Context, page *models.SmartLink) error {
	page.UpdatedAt = time.Now()
	res, err := r.pages.ReplaceOne(ctx, bson.M{"id": page.ID}, page)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("smart link not found")
	}
	return nil
}

// DeletePage removes a page and all of its buttons.
func (r *mongoSmartLinkRepo) DeletePage(ctx context.Context, id string) error {
	res, err := r.pages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("smart link not found")
	}
	_, err = r.buttons.DeleteMany(ctx, bson.M{"link_id": id})
	return err
}

func (r *mongoSmartLinkRepo) AddButton(ctx context.Context, button models.LinkButton) (string, error) {
	if button.ID == "" {
		button.ID = uuid.New().String()
	}
	button.CreatedAt = time.Now()

	if _, err := r.buttons.InsertOne(ctx, button); err != nil {
		return "", err
	}
	return button.ID, nil
}

func (r *mongoSmartLinkRepo) ListButtons(ctx context.Context, linkID string) ([]models.LinkButton, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.buttons.Find(ctx, bson.M{"link_id": linkID, "enabled": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buttons []models.LinkButton
	if err := cursor.All(ctx, &buttons); err != nil {
		return nil, err
	}
	return buttons, nil
}

// ReorderButtons rewrites button positions to match the given order.
// Every ID must belong to the page.
func (r *mongoSmartLinkRepo) ReorderButtons(ctx context.Context, linkID string, buttonIDs []string) error {
	for position, buttonID := range buttonIDs {
		res, err := r.buttons.UpdateOne(ctx,
			bson.M{"id": buttonID, "link_id": linkID},
			bson.M{"$set": bson.M{"position": position}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return errors.New("button not found")
		}
	}
	return nil
}

func (r *mongoSmartLinkRepo) DeleteButton(ctx context.Context, linkID, buttonID string) error {
	res, err := r.buttons.DeleteOne(ctx, bson.M{"id": buttonID, "link_id": linkID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("button not found")
	}
	return nil
}

func (r *mongoSmartLinkRepo) IncrementClicks(ctx context.Context, linkID, buttonID string) error {
	res, err := r.buttons.UpdateOne(ctx,
		bson.M{"id": buttonID, "link_id": linkID},
		bson.M{"$inc": bson.M{"clicks": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("button not found")
	}
	return nil
}
