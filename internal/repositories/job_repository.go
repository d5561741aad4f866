package repositories

import (
	"context"
	"errors"

	"techhub_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - criterios de listado de ofertas
type JobFilter struct {
	Type     models.JobType
	Modality models.JobModality
	Skip     int64
	Limit    int64
}

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Job, error)
	FindWithFilter(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)
	// FindIDsByCompany lista los ids de todas las ofertas de una empresa.
	FindIDsByCompany(ctx context.Context, companyID string) ([]string, error)
}

type JobRepositoryImpl struct {
	collection *mongo.Collection
}

func NewJobRepository(db *mongo.Database) JobRepository {
	return &JobRepositoryImpl{collection: db.Collection(jobsCollection)}
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	_, err := r.collection.InsertOne(ctx, job)
	return err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Job, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *JobRepositoryImpl) FindIDsByCompany(ctx context.Context, companyID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (r *JobRepositoryImpl) FindWithFilter(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	query := bson.M{"is_active": true}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Modality != "" {
		query["modality"] = filter.Modality
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
