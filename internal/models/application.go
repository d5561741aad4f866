package models

import "time"

// ApplicationStatus - estado de una postulación a lo largo del proceso.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusInReview  ApplicationStatus = "in_review"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// ValidApplicationStatus reporta si s es un estado conocido.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusInReview, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application - postulación de un estudiante a una oferta.
type Application struct {
	ID          string            `bson:"_id" json:"id"`
	UserID      string            `bson:"user_id" json:"user_id"`
	JobID       string            `bson:"job_id" json:"job_id"`
	Status      ApplicationStatus `bson:"status" json:"status"`
	CoverLetter string            `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	ResumeURL   string            `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
	AppliedAt   time.Time         `bson:"applied_at" json:"applied_at"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}
