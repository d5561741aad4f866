package middleware

import (
	"strings"
	"time"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/auth"
	"techhub_backend/internal/logger"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SessionCookieName - nombre de la cookie de sesión
const SessionCookieName = "session_token"

const currentUserKey = "currentUser"

// Authenticate resuelve la identidad del que llama. Intenta en orden:
// (a) bearer token del header Authorization, verificado solo por firma
// y expiración; (b) session token de la cookie, buscado en el store y
// chequeado por expiración. La primera resolución exitosa gana; si
// ninguna funciona, el request sigue sin identidad y RequireAuth decide.
func Authenticate(
	issuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveBearer(c, issuer, userRepo)
		if user == nil {
			user = resolveSession(c, sessionRepo, userRepo)
		}

		if user != nil {
			c.Set(currentUserKey, user)
			ctx := logger.WithUserID(c.Request.Context(), user.ID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func resolveBearer(c *gin.Context, issuer *auth.TokenIssuer, userRepo repositories.UserRepository) *models.User {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	claims, err := issuer.VerifyAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	email := claims.Subject
	if email == "" {
		return nil
	}

	user, err := userRepo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		return nil
	}
	return user
}

func resolveSession(c *gin.Context, sessionRepo repositories.SessionRepository, userRepo repositories.UserRepository) *models.User {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil
	}

	session, err := sessionRepo.FindByToken(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	// Las sesiones expiradas nunca se purgan proactivamente:
	// se invalidan acá, al momento de leerlas.
	if !session.Valid(time.Now()) {
		return nil
	}

	user, err := userRepo.FindByID(c.Request.Context(), session.UserID)
	if err != nil {
		return nil
	}
	return user
}

// RequireAuth - exige un usuario resuelto y activo.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if !user.IsActive {
			abortWith(c, apperrors.ErrAccountInactive)
			return
		}
		c.Next()
	}
}

// RequireRole - exige que el rol del usuario sea exactamente el dado.
// Debe correr detrás de RequireAuth.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if user.Role != role {
			abortWith(c, apperrors.NewForbiddenError(roleMessage(role)))
			return
		}
		c.Next()
	}
}

// RequireAnyRole - variante relajada: admite cualquiera de los roles dados.
func RequireAnyRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if !roleSet[user.Role] {
			abortWith(c, apperrors.NewForbiddenError("Access denied: insufficient role"))
			return
		}
		c.Next()
	}
}

// CurrentUser extrae el usuario resuelto del contexto, o nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err})
}

func roleMessage(role models.UserRole) string {
	switch role {
	case models.UserRoleAdmin:
		return "Admin privileges required"
	case models.UserRoleCompany:
		return "Company account required"
	case models.UserRoleStudent:
		return "Student account required"
	default:
		return "Access denied: insufficient permissions"
	}
}
