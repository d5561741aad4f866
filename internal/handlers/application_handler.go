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

// ApplicationHandler - postulaciones de estudiantes y su gestión por empresas
type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	statsService       services.StatsService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, statsService services.StatsService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		statsService:       statsService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications", middleware.RequireAuth())
	{
		student := apps.Group("", middleware.RequireRole(models.UserRoleStudent))
		{
			student.POST("", h.Apply)
			student.GET("", h.ListMine)
			student.GET("/stats", h.MyStats)
			student.PUT("/:id/withdraw", h.Withdraw)
			student.DELETE("/:id", h.Delete)
		}

		company := apps.Group("/company", middleware.RequireAnyRole(models.UserRoleCompany, models.UserRoleAdmin))
		{
			company.GET("/jobs", h.ListForCompany)
			company.GET("/jobs/:job_id", h.ListForJob)
			company.GET("/stats", h.CompanyStats)
			company.PUT("/:id/status", h.UpdateStatus)
		}

		apps.GET("/:id", h.Get)
	}

	rg.GET("/stats", h.PlatformStats)
}

// Apply - POST /api/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine - GET /api/applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	limit, offset := h.Pagination(c)
	result, err := h.applicationService.ListMine(c.Request.Context(), user, offset, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get - GET /api/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	app, err := h.applicationService.FindByID(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Withdraw - PUT /api/applications/:id/withdraw
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	app, err := h.applicationService.Withdraw(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Delete - DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

// MyStats - GET /api/applications/stats
func (h *ApplicationHandler) MyStats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	stats, err := h.applicationService.MyStats(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateStatus - PUT /api/applications/company/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// ListForJob - GET /api/applications/company/jobs/:job_id
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	limit, offset := h.Pagination(c)
	result, err := h.applicationService.ListForJob(c.Request.Context(), user, c.Param("job_id"), offset, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListForCompany - GET /api/applications/company/jobs
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	limit, offset := h.Pagination(c)
	result, err := h.applicationService.ListForCompany(c.Request.Context(), user, offset, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompanyStats - GET /api/applications/company/stats
func (h *ApplicationHandler) CompanyStats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	stats, err := h.applicationService.CompanyStats(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// PlatformStats - GET /api/stats (público)
func (h *ApplicationHandler) PlatformStats(c *gin.Context) {
	stats, err := h.statsService.PlatformStats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
