package dto

// UpdateProfileRequest - campos de perfil editables por el dueño.
// El rol y el hash de password nunca se tocan por esta vía.
type UpdateProfileRequest struct {
	Name            *string  `json:"name,omitempty"`
	Picture         *string  `json:"picture,omitempty"`
	GithubURL       *string  `json:"github_url,omitempty" validate:"omitempty,url"`
	LinkedinURL     *string  `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	PortfolioURL    *string  `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	Skills          []string `json:"skills,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	CompanyName     *string  `json:"company_name,omitempty"`
	CompanyDocument *string  `json:"company_document,omitempty"`
}

// UpdateRoleRequest - cambio de rol (solo admin)
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateActiveRequest - activar/desactivar cuenta (solo admin)
type UpdateActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
