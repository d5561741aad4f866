package apperrors

import (
	"techhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - respuesta estándar de error
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError escribe un AppError como respuesta JSON de Gin.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", err, "path", c.Request.URL.Path)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
