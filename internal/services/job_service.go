package services

import (
	"context"
	"time"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services/dto"

	"github.com/google/uuid"
)

type JobService interface {
	Create(ctx context.Context, owner *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, filter repositories.JobFilter) (*dto.JobListResponse, error)
	Update(ctx context.Context, caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	// Deactivate desactiva la oferta; no hay borrado físico.
	Deactivate(ctx context.Context, caller *models.User, id string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(ctx context.Context, owner *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	now := time.Now().UTC()
	job := &models.Job{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   owner.ID,
		CompanyName: owner.CompanyName,
		Type:        models.JobType(req.Type),
		Modality:    models.JobModality(req.Modality),
		Location:    req.Location,
		Skills:      req.Skills,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if job.CompanyName == "" {
		job.CompanyName = owner.Name
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(ctx context.Context, filter repositories.JobFilter) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobListResponse{Jobs: jobs, Total: total}, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := s.checkOwnership(ctx, caller, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = models.JobType(*req.Type)
	}
	if req.Modality != nil {
		fields["modality"] = models.JobModality(*req.Modality)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Skills != nil {
		fields["skills"] = req.Skills
	}

	job, err := s.jobRepo.Update(ctx, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Deactivate(ctx context.Context, caller *models.User, id string) error {
	if err := s.checkOwnership(ctx, caller, id); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}
	if _, err := s.jobRepo.Update(ctx, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// checkOwnership - solo la empresa dueña o un admin pueden editar la oferta.
func (s *JobServiceImpl) checkOwnership(ctx context.Context, caller *models.User, jobID string) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if caller.Role != models.UserRoleAdmin && job.CompanyID != caller.ID {
		return apperrors.NewForbiddenError("You can only modify your own job postings")
	}
	return nil
}
