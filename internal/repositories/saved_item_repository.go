package repositories

import (
	"context"
	"errors"

	"techhub_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrSavedItemNotFound = errors.New("saved item not found")
	ErrItemAlreadySaved  = errors.New("item already saved")
)

type SavedItemRepository interface {
	Create(ctx context.Context, item *models.SavedItem) error
	FindByUser(ctx context.Context, userID string) ([]models.SavedItem, error)
	// Delete borra el guardado solo si pertenece al usuario dado.
	Delete(ctx context.Context, id, userID string) error
}

type SavedItemRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSavedItemRepository(db *mongo.Database) SavedItemRepository {
	return &SavedItemRepositoryImpl{collection: db.Collection(savedItemsCollection)}
}

func (r *SavedItemRepositoryImpl) Create(ctx context.Context, item *models.SavedItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrItemAlreadySaved
		}
		return err
	}
	return nil
}

func (r *SavedItemRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]models.SavedItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.SavedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SavedItemRepositoryImpl) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSavedItemNotFound
	}
	return nil
}
