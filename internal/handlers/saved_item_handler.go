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

// SavedItemHandler - elementos guardados por estudiantes
type SavedItemHandler struct {
	*BaseHandler
	savedItemService services.SavedItemService
}

func NewSavedItemHandler(base *BaseHandler, savedItemService services.SavedItemService) *SavedItemHandler {
	return &SavedItemHandler{BaseHandler: base, savedItemService: savedItemService}
}

func (h *SavedItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	saved := rg.Group("/saved-items", middleware.RequireAuth(), middleware.RequireRole(models.UserRoleStudent))
	{
		saved.POST("", h.Save)
		saved.GET("", h.List)
		saved.DELETE("/:id", h.Delete)
	}
}

// Save - POST /api/saved-items
func (h *SavedItemHandler) Save(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.SaveItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.savedItemService.Save(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List - GET /api/saved-items
func (h *SavedItemHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	items, err := h.savedItemService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_items": items, "count": len(items)})
}

// Delete - DELETE /api/saved-items/:id
func (h *SavedItemHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.savedItemService.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved item removed"})
}
