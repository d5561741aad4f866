package dto

import "techhub_backend/internal/models"

// CreateJobRequest - publicación de oferta (empresa o admin)
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=practica pasantia junior medio senior"`
	Modality    string   `json:"modality" validate:"required,oneof=remoto presencial hibrido"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// UpdateJobRequest - edición parcial de oferta
type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=practica pasantia junior medio senior"`
	Modality    *string  `json:"modality,omitempty" validate:"omitempty,oneof=remoto presencial hibrido"`
	Location    *string  `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// JobListResponse - listado paginado
type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int64        `json:"total"`
}

// SaveItemRequest - guardar un favorito
type SaveItemRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=job course event company"`
	ItemID   string `json:"item_id" validate:"required"`
}
