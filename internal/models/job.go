package models

import "time"

// JobType - nivel del puesto
type JobType string

const (
	JobTypePractica JobType = "practica"
	JobTypePasantia JobType = "pasantia"
	JobTypeJunior   JobType = "junior"
	JobTypeMedio    JobType = "medio"
	JobTypeSenior   JobType = "senior"
)

// JobModality - modalidad de trabajo
type JobModality string

const (
	JobModalityRemoto     JobModality = "remoto"
	JobModalityPresencial JobModality = "presencial"
	JobModalityHibrido    JobModality = "hibrido"
)

// Job - oferta laboral publicada por una empresa.
type Job struct {
	ID          string      `bson:"_id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	CompanyID   string      `bson:"company_id" json:"company_id"`
	CompanyName string      `bson:"company_name" json:"company_name"`
	Type        JobType     `bson:"type" json:"type"`
	Modality    JobModality `bson:"modality" json:"modality"`
	Location    string      `bson:"location,omitempty" json:"location,omitempty"`
	Skills      []string    `bson:"skills,omitempty" json:"skills,omitempty"`
	IsActive    bool        `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}
