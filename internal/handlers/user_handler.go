package handlers

import (
	"net/http"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/middleware"
	"techhub_backend/internal/models"
	"techhub_backend/internal/services"
	"techhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler - perfil propio y administración de cuentas
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", middleware.RequireAuth())
	{
		users.PUT("/profile", h.UpdateProfile)
	}

	admin := rg.Group("/admin/users", middleware.RequireAuth(), middleware.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/:id/role", h.UpdateRole)
		admin.PUT("/:id/active", h.UpdateActive)
	}
}

// UpdateProfile - PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListUsers - GET /api/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, offset := h.Pagination(c)

	users, err := h.userService.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// UpdateRole - PUT /api/admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateActive - PUT /api/admin/users/:id/active
func (h *UserHandler) UpdateActive(c *gin.Context) {
	var req dto.UpdateActiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
