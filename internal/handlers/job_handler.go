package handlers

import (
	"net/http"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/middleware"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services"
	"techhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler - publicaciones de trabajo
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)

		publish := jobs.Group("", middleware.RequireAuth(),
			middleware.RequireAnyRole(models.UserRoleCompany, models.UserRoleAdmin))
		{
			publish.POST("", h.Create)
			publish.PUT("/:id", h.Update)
			publish.DELETE("/:id", h.Deactivate)
		}
	}
}

// List - GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	limit, offset := h.Pagination(c)
	filter := repositories.JobFilter{
		Type:     models.JobType(c.Query("type")),
		Modality: models.JobModality(c.Query("modality")),
		Skip:     offset,
		Limit:    limit,
	}

	resp, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get - GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Create - POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// Update - PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Deactivate - DELETE /api/jobs/:id
// Borrado lógico: la publicación queda inactiva, no se elimina.
func (h *JobHandler) Deactivate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.jobService.Deactivate(c.Request.Context(), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deactivated"})
}
