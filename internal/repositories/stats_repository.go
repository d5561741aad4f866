package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// PlatformCounts - totales globales por colección.
type PlatformCounts struct {
	Users        int64
	Jobs         int64
	Applications int64
}

type StatsRepository interface {
	PlatformCounts(ctx context.Context) (*PlatformCounts, error)
}

type StatsRepositoryImpl struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (r *StatsRepositoryImpl) PlatformCounts(ctx context.Context) (*PlatformCounts, error) {
	counts := &PlatformCounts{}

	var err error
	if counts.Users, err = r.db.Collection(usersCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.Jobs, err = r.db.Collection(jobsCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.Applications, err = r.db.Collection(applicationsCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	return counts, nil
}
