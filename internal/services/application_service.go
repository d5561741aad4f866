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

type ApplicationService interface {
	Apply(ctx context.Context, caller *models.User, req *dto.CreateApplicationRequest) (*models.Application, error)
	FindByID(ctx context.Context, caller *models.User, id string) (*models.Application, error)
	ListMine(ctx context.Context, caller *models.User, skip, limit int64) (*dto.ApplicationListResponse, error)
	// Withdraw marca la postulación como retirada; solo el postulante puede hacerlo.
	Withdraw(ctx context.Context, caller *models.User, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, caller *models.User, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	Delete(ctx context.Context, caller *models.User, id string) error
	ListForJob(ctx context.Context, caller *models.User, jobID string, skip, limit int64) (*dto.ApplicationListResponse, error)
	ListForCompany(ctx context.Context, caller *models.User, skip, limit int64) (*dto.ApplicationListResponse, error)
	MyStats(ctx context.Context, caller *models.User) (*dto.ApplicationStats, error)
	CompanyStats(ctx context.Context, caller *models.User) (*dto.ApplicationStats, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{appRepo: appRepo, jobRepo: jobRepo}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, caller *models.User, req *dto.CreateApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.NewBadRequestError("This job is no longer accepting applications")
	}

	now := time.Now().UTC()
	app := &models.Application{
		ID:          uuid.NewString(),
		UserID:      caller.ID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		AppliedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// El índice único (user_id, job_id) decide el duplicado, no un precheck.
	if err := s.appRepo.Create(ctx, app); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) FindByID(ctx context.Context, caller *models.User, id string) (*models.Application, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.UserRoleAdmin && app.UserID != caller.ID {
		return nil, apperrors.NewForbiddenError("You can only view your own applications")
	}
	return app, nil
}

func (s *ApplicationServiceImpl) ListMine(ctx context.Context, caller *models.User, skip, limit int64) (*dto.ApplicationListResponse, error) {
	apps, total, err := s.appRepo.FindByUser(ctx, caller.ID, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ApplicationListResponse{Applications: apps, Total: total}, nil
}

func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, caller *models.User, id string) (*models.Application, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != caller.ID {
		return nil, apperrors.NewForbiddenError("You can only withdraw your own applications")
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, models.ApplicationStatusWithdrawn, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, caller *models.User, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkJobOwnership(ctx, caller, app.JobID); err != nil {
		return nil, err
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, status, req.Notes)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *ApplicationServiceImpl) Delete(ctx context.Context, caller *models.User, id string) error {
	if err := s.appRepo.Delete(ctx, id, caller.ID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, caller *models.User, jobID string, skip, limit int64) (*dto.ApplicationListResponse, error) {
	if err := s.checkJobOwnership(ctx, caller, jobID); err != nil {
		return nil, err
	}

	apps, total, err := s.appRepo.FindByJobIDs(ctx, []string{jobID}, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ApplicationListResponse{Applications: apps, Total: total}, nil
}

func (s *ApplicationServiceImpl) ListForCompany(ctx context.Context, caller *models.User, skip, limit int64) (*dto.ApplicationListResponse, error) {
	jobIDs, err := s.jobRepo.FindIDsByCompany(ctx, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	apps, total, err := s.appRepo.FindByJobIDs(ctx, jobIDs, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ApplicationListResponse{Applications: apps, Total: total}, nil
}

func (s *ApplicationServiceImpl) MyStats(ctx context.Context, caller *models.User) (*dto.ApplicationStats, error) {
	counts, err := s.appRepo.CountByStatusForUser(ctx, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return statsFromCounts(counts), nil
}

func (s *ApplicationServiceImpl) CompanyStats(ctx context.Context, caller *models.User) (*dto.ApplicationStats, error) {
	jobIDs, err := s.jobRepo.FindIDsByCompany(ctx, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.appRepo.CountByStatusForJobs(ctx, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return statsFromCounts(counts), nil
}

func (s *ApplicationServiceImpl) findApplication(ctx context.Context, id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// checkJobOwnership - solo la empresa dueña de la oferta o un admin.
func (s *ApplicationServiceImpl) checkJobOwnership(ctx context.Context, caller *models.User, jobID string) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if caller.Role != models.UserRoleAdmin && job.CompanyID != caller.ID {
		return apperrors.NewForbiddenError("You can only manage applications for your own job postings")
	}
	return nil
}

func statsFromCounts(counts map[models.ApplicationStatus]int64) *dto.ApplicationStats {
	stats := &dto.ApplicationStats{
		Pending:    counts[models.ApplicationStatusApplied] + counts[models.ApplicationStatusInReview],
		Interviews: counts[models.ApplicationStatusInterview],
		Approved:   counts[models.ApplicationStatusAccepted],
		Rejected:   counts[models.ApplicationStatusRejected],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats
}
