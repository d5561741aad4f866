package services

import (
	"context"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services/dto"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	// FindAll - listado de usuarios para administración.
	FindAll(ctx context.Context, limit, offset int64) ([]models.User, error)
	// UpdateRole - cambio de rol; el que llama ya debe ser admin.
	UpdateRole(ctx context.Context, userID string, role string) (*models.User, error)
	// SetActive - la desactivación es un flag, nunca un borrado.
	SetActive(ctx context.Context, userID string, active bool) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// UpdateProfile mezcla solo los campos enviados. El rol y el hash de
// password no pasan por acá bajo ningún nombre.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Picture != nil {
		fields["picture"] = *req.Picture
	}
	if req.GithubURL != nil {
		fields["github_url"] = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		fields["linkedin_url"] = *req.LinkedinURL
	}
	if req.PortfolioURL != nil {
		fields["portfolio_url"] = *req.PortfolioURL
	}
	if req.Skills != nil {
		fields["skills"] = req.Skills
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.CompanyDocument != nil {
		fields["company_document"] = *req.CompanyDocument
	}

	user, err := s.userRepo.Update(ctx, userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) FindAll(ctx context.Context, limit, offset int64) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) UpdateRole(ctx context.Context, userID string, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	user, err := s.userRepo.Update(ctx, userID, map[string]interface{}{"role": models.UserRole(role)})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) SetActive(ctx context.Context, userID string, active bool) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, userID, map[string]interface{}{"is_active": active})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
