package repositories

import (
	"context"
	"errors"

	"techhub_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	// DeleteByToken reporta si existía una sesión con ese token.
	DeleteByToken(ctx context.Context, token string) (bool, error)
}

type SessionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) SessionRepository {
	return &SessionRepositoryImpl{collection: db.Collection(sessionsCollection)}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *models.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *SessionRepositoryImpl) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.collection.FindOne(ctx, bson.M{"session_token": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) DeleteByToken(ctx context.Context, token string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"session_token": token})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
