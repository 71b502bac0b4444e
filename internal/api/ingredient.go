package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/middleware"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
	authService       *service.AuthService
}

func NewIngredientHandler(ingredientService *service.IngredientService, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		authService:       authService,
	}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	ingredients.Use(middleware.AuthMiddleware(h.authService))
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.PATCH("/:id", h.UpdateIngredient)
		ingredients.DELETE("/:id", h.DeleteIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	assignedOnly := c.DefaultQuery("assigned_only", "0") == "1"

	ingredients, err := h.ingredientService.ListIngredients(c.Request.Context(), userID, assignedOnly)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.UpdateIngredient(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"name": service.ErrNameTaken.Error()})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := h.ingredientService.DeleteIngredient(c.Request.Context(), userID, id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
