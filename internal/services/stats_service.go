package services

import (
	"context"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services/dto"
)

type StatsService interface {
	PlatformStats(ctx context.Context) (*dto.PlatformStats, error)
}

type StatsServiceImpl struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

func (s *StatsServiceImpl) PlatformStats(ctx context.Context) (*dto.PlatformStats, error) {
	counts, err := s.statsRepo.PlatformCounts(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PlatformStats{
		TotalUsers:        counts.Users,
		TotalJobs:         counts.Jobs,
		TotalApplications: counts.Applications,
	}, nil
}
