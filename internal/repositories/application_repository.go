package repositories

import (
	"context"
	"errors"
	"time"

	"techhub_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Create inserta la postulación; el índice único (user_id, job_id)
	// es la señal de duplicado.
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	FindByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Application, int64, error)
	FindByJobIDs(ctx context.Context, jobIDs []string, skip, limit int64) ([]models.Application, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, notes string) (*models.Application, error)
	// Delete borra la postulación solo si pertenece al usuario dado.
	Delete(ctx context.Context, id, userID string) error
	CountByStatusForUser(ctx context.Context, userID string) (map[models.ApplicationStatus]int64, error)
	CountByStatusForJobs(ctx context.Context, jobIDs []string) (map[models.ApplicationStatus]int64, error)
}

type ApplicationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &ApplicationRepositoryImpl{collection: db.Collection(applicationsCollection)}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	_, err := r.collection.InsertOne(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Application, int64, error) {
	return r.findPage(ctx, bson.M{"user_id": userID}, skip, limit)
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(ctx context.Context, jobIDs []string, skip, limit int64) ([]models.Application, int64, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, 0, nil
	}
	return r.findPage(ctx, bson.M{"job_id": bson.M{"$in": jobIDs}}, skip, limit)
}

func (r *ApplicationRepositoryImpl) findPage(ctx context.Context, query bson.M, skip, limit int64) ([]models.Application, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	apps := []models.Application{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, notes string) (*models.Application, error) {
	fields := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if notes != "" {
		fields["notes"] = notes
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByStatusForUser(ctx context.Context, userID string) (map[models.ApplicationStatus]int64, error) {
	return r.countByStatus(ctx, bson.M{"user_id": userID})
}

func (r *ApplicationRepositoryImpl) CountByStatusForJobs(ctx context.Context, jobIDs []string) (map[models.ApplicationStatus]int64, error) {
	if len(jobIDs) == 0 {
		return map[models.ApplicationStatus]int64{}, nil
	}
	return r.countByStatus(ctx, bson.M{"job_id": bson.M{"$in": jobIDs}})
}

func (r *ApplicationRepositoryImpl) countByStatus(ctx context.Context, match bson.M) (map[models.ApplicationStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := map[models.ApplicationStatus]int64{}
	for cursor.Next(ctx) {
		var row struct {
			Status models.ApplicationStatus `bson:"_id"`
			Count  int64                    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Status] = row.Count
	}
	return counts, cursor.Err()
}
