package handlers

import (
	"strconv"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler - helpers compartidos por todos los handlers
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON parsea el body y corre las reglas de validación.
// Devuelve false si ya se escribió una respuesta de error.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if apperrors.As(err, &verr) {
			apperrors.HandleError(c, apperrors.ValidationError(verr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}

	return true
}

// HandleServiceError normaliza errores del service layer a AppError.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// Pagination lee limit/offset del query string con defaults sanos.
func (h *BaseHandler) Pagination(c *gin.Context) (limit, offset int64) {
	limit = 50
	offset = 0

	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
