package models

import "time"

// UserRole - rol exclusivo del usuario. Los valores viajan tal cual por el API.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleStudent UserRole = "estudiante"
	UserRoleCompany UserRole = "empresa"
)

// ValidRole reporta si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case UserRoleAdmin, UserRoleStudent, UserRoleCompany:
		return true
	}
	return false
}

// User - registro de identidad. PasswordHash está vacío para cuentas
// autenticadas únicamente vía el proveedor externo.
type User struct {
	ID           string   `bson:"_id" json:"id"`
	Email        string   `bson:"email" json:"email"`
	Name         string   `bson:"name" json:"name"`
	Picture      string   `bson:"picture,omitempty" json:"picture,omitempty"`
	Role         UserRole `bson:"role" json:"role"`
	IsVerified   bool     `bson:"is_verified" json:"is_verified"`
	IsActive     bool     `bson:"is_active" json:"is_active"`
	PasswordHash string   `bson:"password_hash,omitempty" json:"-"`

	// Campos de perfil
	GithubURL       string    `bson:"github_url,omitempty" json:"github_url,omitempty"`
	LinkedinURL     string    `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	PortfolioURL    string    `bson:"portfolio_url,omitempty" json:"portfolio_url,omitempty"`
	Skills          []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	CompanyName     string    `bson:"company_name,omitempty" json:"company_name,omitempty"`
	CompanyDocument string    `bson:"company_document,omitempty" json:"company_document,omitempty"`
	CVFilePath      string    `bson:"cv_file_path,omitempty" json:"cv_file_path,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// PublicUser - proyección pública del usuario. Nunca incluye el hash
// de password bajo ningún nombre de campo.
type PublicUser struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       UserRole `json:"role"`
	IsVerified bool     `json:"is_verified"`
}

// Public devuelve la proyección pública del usuario.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}
