package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/middleware"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

type TagHandler struct {
	tagService  *service.TagService
	authService *service.AuthService
}

func NewTagHandler(tagService *service.TagService, authService *service.AuthService) *TagHandler {
	return &TagHandler{
		tagService:  tagService,
		authService: authService,
	}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	tags.Use(middleware.AuthMiddleware(h.authService))
	{
		tags.GET("", h.ListTags)
		tags.PATCH("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
	}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	assignedOnly := c.DefaultQuery("assigned_only", "0") == "1"

	tags, err := h.tagService.ListTags(c.Request.Context(), userID, assignedOnly)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
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

	tag, err := h.tagService.UpdateTag(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"name": service.ErrNameTaken.Error()})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), userID, id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
