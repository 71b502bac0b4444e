package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/middleware"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/types"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
	imageUploader service.ImageUploader
	uploadLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService, imageUploader service.ImageUploader, uploadLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		imageUploader: imageUploader,
		uploadLimiter: uploadLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(h.authService))
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.PATCH("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)

		upload := recipes.Group("")
		if h.uploadLimiter != nil {
			upload.Use(h.uploadLimiter.RateLimitMiddleware())
		}
		upload.POST("/:id/upload-image", h.UploadImage)
	}
}

// parseIDFilter parses a comma-separated list of entity IDs from a query
// parameter.
func parseIDFilter(value string) ([]uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(value, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tagIDs, err := parseIDFilter(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id filter"})
		return
	}
	ingredientIDs, err := parseIDFilter(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id filter"})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID, tagIDs, ingredientIDs)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	summaries := make([]RecipeSummary, len(recipes))
	for i := range recipes {
		summaries[i] = newRecipeSummary(&recipes[i])
	}

	c.JSON(http.StatusOK, gin.H{"recipes": summaries})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input types.CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	var input types.UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	// PUT is a full replacement and must carry every required field
	if c.Request.Method == http.MethodPut {
		if input.Title == nil || input.TimeMinutes == nil || input.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, time_minutes and price are required"})
			return
		}
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Ownership check happens before the upload is attempted
	if _, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"image": "no image provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"image": "could not read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"image": "could not read image"})
		return
	}

	if h.imageUploader == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image storage is not configured"})
		return
	}

	url, err := h.imageUploader.UploadRecipeImage(c.Request.Context(), id, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	recipe, err := h.recipeService.SetRecipeImage(c.Request.Context(), userID, id, url)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
