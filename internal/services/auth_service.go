package services

import (
	"context"
	"time"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/auth"
	"techhub_backend/internal/logger"
	"techhub_backend/internal/models"
	"techhub_backend/internal/oauth"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services/dto"

	"github.com/google/uuid"
)

// SessionExchanger - intercambio con el proveedor de identidad externo.
type SessionExchanger interface {
	ExchangeSession(ctx context.Context, sessionID string) (*oauth.SessionData, error)
}

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	// Login devuelve además el session token para que el handler emita la cookie.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, string, error)
	// CompleteAuth - flujo federado legacy; devuelve el session token local.
	CompleteAuth(ctx context.Context, sessionID string) (*dto.CompleteAuthResponse, string, error)
	Logout(ctx context.Context, sessionToken string)
	ChangePassword(ctx context.Context, sessionToken string, req *dto.PasswordUpdateRequest) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	issuer      *auth.TokenIssuer
	exchanger   SessionExchanger
	sessionTTL  time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	issuer *auth.TokenIssuer,
	exchanger SessionExchanger,
	sessionExpireDays int,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		issuer:      issuer,
		exchanger:   exchanger,
		sessionTTL:  time.Duration(sessionExpireDays) * 24 * time.Hour,
	}
}

// Register - registro local. Las cuentas locales quedan verificadas
// y activas de inmediato: no existe paso de confirmación por email.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.UserRoleStudent
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			return nil, apperrors.ErrInvalidUserRole
		}
		role = models.UserRole(req.Role)
	}

	// Precheck de duplicado; el índice único en storage cubre la carrera.
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         role,
		IsVerified:   true,
		IsActive:     true,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	accessToken, err := s.issuer.CreateAccessToken(user.Email, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// Login - autenticación con email y password.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}

	// Cuenta solo-OAuth: no hay hash contra el cual verificar.
	if user.PasswordHash == "" {
		return nil, "", apperrors.ErrOAuthOnlyAccount
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountInactive
	}

	sessionToken, err := s.createSession(ctx, user.ID, "")
	if err != nil {
		return nil, "", err
	}

	accessToken, err := s.issuer.CreateAccessToken(user.Email, user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user.Public(),
	}, sessionToken, nil
}

// CompleteAuth - completa el flujo legacy contra el proveedor externo.
// Crea el usuario con rol estudiante si no existe, o reconcilia
// nombre/foto/verificación sin tocar el rol.
func (s *AuthServiceImpl) CompleteAuth(ctx context.Context, sessionID string) (*dto.CompleteAuthResponse, string, error) {
	if sessionID == "" {
		return nil, "", apperrors.ErrMissingSessionID
	}

	data, err := s.exchanger.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, "", apperrors.ExternalServiceError(err)
	}

	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	switch {
	case err == nil:
		fields := map[string]interface{}{}
		if user.Name != data.Name {
			fields["name"] = data.Name
		}
		if user.Picture != data.Picture {
			fields["picture"] = data.Picture
		}
		if !user.IsVerified {
			fields["is_verified"] = true
		}
		if len(fields) > 0 {
			user, err = s.userRepo.Update(ctx, user.ID, fields)
			if err != nil {
				return nil, "", apperrors.InternalError(err)
			}
		}
	case apperrors.Is(err, repositories.ErrUserNotFound):
		user = &models.User{
			ID:         uuid.NewString(),
			Email:      data.Email,
			Name:       data.Name,
			Picture:    data.Picture,
			Role:       models.UserRoleStudent,
			IsVerified: true,
			IsActive:   true,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, "", apperrors.InternalError(err)
		}
	default:
		return nil, "", apperrors.InternalError(err)
	}

	// El token local siempre es propio; el del proveedor se guarda aparte.
	sessionToken, err := s.createSession(ctx, user.ID, data.SessionToken)
	if err != nil {
		return nil, "", err
	}

	return &dto.CompleteAuthResponse{
		User:    user,
		Message: "Authentication completed successfully",
	}, sessionToken, nil
}

// Logout - borra la sesión si existe. Nunca falla hacia afuera:
// la ausencia de sesión no es un error para el cliente.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionToken string) {
	if sessionToken == "" {
		return
	}
	if _, err := s.sessionRepo.DeleteByToken(ctx, sessionToken); err != nil {
		logger.CtxWarn(ctx, "Failed to delete session on logout", "error", err.Error())
	}
}

// ChangePassword - cambio de password. Requiere auth por sesión,
// no por bearer token.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, sessionToken string, req *dto.PasswordUpdateRequest) error {
	if sessionToken == "" {
		return apperrors.NewUnauthorizedError("Not authenticated")
	}

	session, err := s.sessionRepo.FindByToken(ctx, sessionToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return apperrors.ErrInvalidSession
		}
		return apperrors.InternalError(err)
	}
	if !session.Valid(time.Now()) {
		return apperrors.ErrInvalidSession
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.PasswordHash == "" {
		return apperrors.ErrPasswordNotSet
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if _, err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"password_hash": newHash}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) createSession(ctx context.Context, userID, providerToken string) (string, error) {
	sessionToken, err := auth.GenerateSessionToken()
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:            uuid.NewString(),
		UserID:        userID,
		SessionToken:  sessionToken,
		ProviderToken: providerToken,
		ExpiresAt:     now.Add(s.sessionTTL),
		CreatedAt:     now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", apperrors.InternalError(err)
	}
	return sessionToken, nil
}
