package routes

import (
	"net/http"

	"techhub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SetupRoutes registra todos los endpoints de la API bajo /api.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers, db *mongo.Database) {
	banner := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "TechHub UPE API",
			"version": "1.0.0",
		})
	}
	router.GET("/", banner)

	router.GET("/health", func(c *gin.Context) {
		if db != nil {
			if err := db.Client().Ping(c.Request.Context(), nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "up"})
	})

	api := router.Group("/api")
	api.GET("", banner)

	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.SavedItem.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
}
