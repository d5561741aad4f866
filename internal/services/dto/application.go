package dto

import "techhub_backend/internal/models"

// CreateApplicationRequest - postulación de un estudiante a una oferta
type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty" validate:"omitempty,url"`
}

// UpdateApplicationStatusRequest - cambio de estado por la empresa
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}

// ApplicationListResponse - listado paginado
type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Total        int64                `json:"total"`
}

// ApplicationStats - resumen de postulaciones por estado.
// Pending agrupa applied e in_review; Approved es accepted.
type ApplicationStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Interviews int64 `json:"interviews"`
	Approved   int64 `json:"approved"`
	Rejected   int64 `json:"rejected"`
}

// PlatformStats - totales globales de la plataforma
type PlatformStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}
