package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/middleware"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.POST("/token", h.IssueToken)

		me := users.Group("/me")
		me.Use(middleware.AuthMiddleware(h.authService))
		{
			me.GET("", h.GetMe)
			me.PATCH("", h.UpdateMe)
		}
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"email": service.ErrEmailTaken.Error()})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *UserHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Email-not-found and wrong-password stay distinguishable
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"email": service.ErrEmailNotFound.Error()})
		case errors.Is(err, service.ErrIncorrectPassword):
			c.JSON(http.StatusBadRequest, gin.H{"password": service.ErrIncorrectPassword.Error()})
		default:
			abortWithServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req.Name, req.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
