package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/middleware"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

// RegisterRoutes wires up all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, jwtSecret string, imageUploader service.ImageUploader, redisClient *redis.Client) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)

	authService := service.NewAuthService(db, jwtSecret)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	ingredientService := service.NewIngredientService(db)

	var uploadLimiter *middleware.RateLimiter
	if redisClient != nil {
		uploadLimiter = middleware.NewImageUploadRateLimiter(redisClient)
	}

	userHandler := NewUserHandler(authService)
	recipeHandler := NewRecipeHandler(recipeService, authService, imageUploader, uploadLimiter)
	tagHandler := NewTagHandler(tagService, authService)
	ingredientHandler := NewIngredientHandler(ingredientService, authService)

	v1 := router.Group("/api/v1")
	userHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	tagHandler.RegisterRoutes(v1)
	ingredientHandler.RegisterRoutes(v1)
}
