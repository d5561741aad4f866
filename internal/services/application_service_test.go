package services

import (
	"context"
	"testing"
	"time"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/models"
	"techhub_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentUser(name string) *models.User {
	return &models.User{
		ID:        uuid.NewString(),
		Email:     uuid.NewString() + "@alu.upe.edu.py",
		Name:      name,
		Role:      models.UserRoleStudent,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func seedJob(t *testing.T, jobRepo *fakeJobRepo, owner *models.User) *models.Job {
	t.Helper()
	svc := NewJobService(jobRepo)
	job, err := svc.Create(context.Background(), owner, &dto.CreateJobRequest{
		Title:       "Desarrollador Junior",
		Description: "Backend en Go",
		Type:        "junior",
		Modality:    "remoto",
	})
	require.NoError(t, err)
	return job
}

func TestApply_CreatesApplication(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	owner := companyUser("TechCorp")
	job := seedJob(t, jobRepo, owner)
	student := studentUser("Ana")

	app, err := svc.Apply(context.Background(), student, &dto.CreateApplicationRequest{
		JobID:       job.ID,
		CoverLetter: "Me interesa el puesto",
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, app.UserID)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	job := seedJob(t, jobRepo, companyUser("TechCorp"))
	student := studentUser("Ana")

	_, err := svc.Apply(context.Background(), student, &dto.CreateApplicationRequest{JobID: job.ID})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), student, &dto.CreateApplicationRequest{JobID: job.ID})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeAlreadyApplied, appErr.Code)
}

func TestApply_JobChecks(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)
	student := studentUser("Ana")

	// Oferta inexistente.
	_, err := svc.Apply(context.Background(), student, &dto.CreateApplicationRequest{JobID: "nope"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	// Oferta desactivada.
	owner := companyUser("TechCorp")
	job := seedJob(t, jobRepo, owner)
	require.NoError(t, NewJobService(jobRepo).Deactivate(context.Background(), owner, job.ID))

	_, err = svc.Apply(context.Background(), student, &dto.CreateApplicationRequest{JobID: job.ID})
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestWithdraw_OnlyApplicant(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	job := seedJob(t, jobRepo, companyUser("TechCorp"))
	ana := studentUser("Ana")
	beto := studentUser("Beto")

	app, err := svc.Apply(context.Background(), ana, &dto.CreateApplicationRequest{JobID: job.ID})
	require.NoError(t, err)

	_, err = svc.Withdraw(context.Background(), beto, app.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)

	withdrawn, err := svc.Withdraw(context.Background(), ana, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, withdrawn.Status)
}

func TestUpdateStatus_OwnershipAndValidation(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	owner := companyUser("TechCorp")
	otra := companyUser("OtraEmpresa")
	admin := &models.User{ID: uuid.NewString(), Role: models.UserRoleAdmin, IsActive: true}
	job := seedJob(t, jobRepo, owner)

	app, err := svc.Apply(context.Background(), studentUser("Ana"), &dto.CreateApplicationRequest{JobID: job.ID})
	require.NoError(t, err)

	// Estado desconocido.
	_, err = svc.UpdateStatus(context.Background(), owner, app.ID, &dto.UpdateApplicationStatusRequest{Status: "contratado"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidApplicationStatus, appErr.Code)

	// Otra empresa no gestiona postulaciones ajenas.
	_, err = svc.UpdateStatus(context.Background(), otra, app.ID, &dto.UpdateApplicationStatusRequest{Status: "in_review"})
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)

	// La dueña sí, con notas.
	updated, err := svc.UpdateStatus(context.Background(), owner, app.ID, &dto.UpdateApplicationStatusRequest{
		Status: "interview",
		Notes:  "Agendar para el lunes",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Status)
	assert.Equal(t, "Agendar para el lunes", updated.Notes)

	// El admin también.
	updated, err = svc.UpdateStatus(context.Background(), admin, app.ID, &dto.UpdateApplicationStatusRequest{Status: "offer"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusOffer, updated.Status)
}

func TestDelete_OnlyApplicant(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	job := seedJob(t, jobRepo, companyUser("TechCorp"))
	ana := studentUser("Ana")
	beto := studentUser("Beto")

	app, err := svc.Apply(context.Background(), ana, &dto.CreateApplicationRequest{JobID: job.ID})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), beto, app.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.Delete(context.Background(), ana, app.ID))

	_, err = svc.FindByID(context.Background(), ana, app.ID)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListForCompany_CoversAllItsJobs(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	owner := companyUser("TechCorp")
	otra := companyUser("OtraEmpresa")
	job1 := seedJob(t, jobRepo, owner)
	job2 := seedJob(t, jobRepo, owner)
	ajeno := seedJob(t, jobRepo, otra)

	_, err := svc.Apply(context.Background(), studentUser("Ana"), &dto.CreateApplicationRequest{JobID: job1.ID})
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), studentUser("Beto"), &dto.CreateApplicationRequest{JobID: job2.ID})
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), studentUser("Caro"), &dto.CreateApplicationRequest{JobID: ajeno.ID})
	require.NoError(t, err)

	result, err := svc.ListForCompany(context.Background(), owner, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	// El listado por oferta exige ser la dueña.
	_, err = svc.ListForJob(context.Background(), otra, job1.ID, 0, 50)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)

	porOferta, err := svc.ListForJob(context.Background(), owner, job1.ID, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), porOferta.Total)
}

func TestStats_GroupsByStatus(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	svc := NewApplicationService(appRepo, jobRepo)

	owner := companyUser("TechCorp")
	ana := studentUser("Ana")

	var apps []*models.Application
	for i := 0; i < 4; i++ {
		job := seedJob(t, jobRepo, owner)
		app, err := svc.Apply(context.Background(), ana, &dto.CreateApplicationRequest{JobID: job.ID})
		require.NoError(t, err)
		apps = append(apps, app)
	}

	_, err := svc.UpdateStatus(context.Background(), owner, apps[0].ID, &dto.UpdateApplicationStatusRequest{Status: "in_review"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), owner, apps[1].ID, &dto.UpdateApplicationStatusRequest{Status: "interview"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), owner, apps[2].ID, &dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.NoError(t, err)

	stats, err := svc.MyStats(context.Background(), ana)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Pending) // applied + in_review
	assert.Equal(t, int64(1), stats.Interviews)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(0), stats.Rejected)

	companyStats, err := svc.CompanyStats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(4), companyStats.Total)
}
