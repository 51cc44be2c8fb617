package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ryank-holgate/ChronoChef/internal/api"
	"github.com/ryank-holgate/ChronoChef/internal/database"
	"github.com/ryank-holgate/ChronoChef/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	db *gorm.DB,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	recipeHandler *api.RecipeHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	authHandler.RegisterRoutes(apiGroup, validator)
	profileHandler.RegisterRoutes(apiGroup, validator)
	recipeHandler.RegisterRoutes(apiGroup, validator)

	return router
}
