package handlers

import (
	"net/http"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/middleware"
	"techhub_backend/internal/services"
	"techhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler - registro, login, OAuth y ciclo de vida de la sesión
type AuthHandler struct {
	*BaseHandler
	authService      services.AuthService
	sessionMaxAgeSec int
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessionExpireDays int) *AuthHandler {
	return &AuthHandler{
		BaseHandler:      base,
		authService:      authService,
		sessionMaxAgeSec: sessionExpireDays * 86400,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/complete", h.CompleteAuth)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.Me)
		auth.PUT("/change-password", h.ChangePassword)
	}
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, sessionToken, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, sessionToken)
	c.JSON(http.StatusOK, resp)
}

// CompleteAuth - POST /api/auth/complete
// Cierra el flujo OAuth: canjea el session ID del proveedor
// por una sesión local.
func (h *AuthHandler) CompleteAuth(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")

	resp, sessionToken, err := h.authService.CompleteAuth(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, sessionToken)
	c.JSON(http.StatusOK, resp)
}

// Logout - POST /api/auth/logout
// Siempre responde 200, haya o no sesión que borrar.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookieName)
	h.authService.Logout(c.Request.Context(), token)

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me - GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword - PUT /api/auth/change-password
// Solo acepta credencial de sesión, nunca bearer.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.PasswordUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, _ := c.Cookie(middleware.SessionCookieName)
	if err := h.authService.ChangePassword(c.Request.Context(), token, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, h.sessionMaxAgeSec, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
