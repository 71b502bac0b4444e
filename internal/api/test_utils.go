package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/testhelpers"
)

// fakeUploader stands in for S3 in handler tests
type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, data []byte, contentType string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://images.test/recipe-images/%s/%d", recipeID, f.uploads), nil
}

// setupTestRouter builds the full API over an in-memory database
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	uploader := &fakeUploader{}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	RegisterRoutes(router, db, "test-secret", uploader, nil)

	return router, db, uploader
}

// createUserAndToken provisions an account and a valid bearer token for it
func createUserAndToken(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()

	authSvc := service.NewAuthService(db, "test-secret")
	user, err := authSvc.Register(context.Background(), email, "test123", "Test User")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := authSvc.IssueToken(context.Background(), email, "test123")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	return user, token
}
