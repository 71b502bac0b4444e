package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/testhelpers"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "test@example.com", "test123", "Test User")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "test123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test123")))
}

func TestRegisterNormalizesEmailDomain(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "Test@EXAMPLE.com", "test123", "")
	assert.NoError(t, err)
	assert.Equal(t, "Test@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register(context.Background(), "test@example.com", "test123", "")
	assert.NoError(t, err)

	_, err = authSvc.Register(context.Background(), "test@example.com", "other456", "")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// Same address with a differently cased domain is still a duplicate
	_, err = authSvc.Register(context.Background(), "test@EXAMPLE.COM", "other456", "")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestIssueTokenSuccess(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "test@example.com", "test123", "")
	assert.NoError(t, err)

	token, err := authSvc.IssueToken(context.Background(), "test@example.com", "test123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authSvc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.IssueToken(context.Background(), "nobody@example.com", "test123")
	assert.ErrorIs(t, err, service.ErrEmailNotFound)
}

func TestIssueTokenWrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register(context.Background(), "test@example.com", "test123", "")
	assert.NoError(t, err)

	_, err = authSvc.IssueToken(context.Background(), "test@example.com", "wrongpass")
	assert.ErrorIs(t, err, service.ErrIncorrectPassword)
}

func TestIssueTokenInactiveAccount(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "test@example.com", "test123", "")
	assert.NoError(t, err)

	user.IsActive = false
	assert.NoError(t, db.Save(user).Error)

	_, err = authSvc.IssueToken(context.Background(), "test@example.com", "test123")
	assert.ErrorIs(t, err, service.ErrIncorrectPassword)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")
	otherSvc := service.NewAuthService(db, "other-secret")

	_, err := authSvc.Register(context.Background(), "test@example.com", "test123", "")
	assert.NoError(t, err)
	token, err := authSvc.IssueToken(context.Background(), "test@example.com", "test123")
	assert.NoError(t, err)

	_, err = otherSvc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestUpdateProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "test@example.com", "test123", "Old Name")
	assert.NoError(t, err)

	newName := "New Name"
	newPassword := "newpass456"
	updated, err := authSvc.UpdateProfile(context.Background(), user.ID, &newName, &newPassword)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "test@example.com", updated.Email)

	// Old password no longer verifies, new one does
	_, err = authSvc.IssueToken(context.Background(), "test@example.com", "test123")
	assert.ErrorIs(t, err, service.ErrIncorrectPassword)
	_, err = authSvc.IssueToken(context.Background(), "test@example.com", "newpass456")
	assert.NoError(t, err)
}

func TestUpdateProfileNameOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	user, err := authSvc.Register(context.Background(), "test@example.com", "test123", "Old Name")
	assert.NoError(t, err)

	newName := "New Name"
	_, err = authSvc.UpdateProfile(context.Background(), user.ID, &newName, nil)
	assert.NoError(t, err)

	// Password untouched
	_, err = authSvc.IssueToken(context.Background(), "test@example.com", "test123")
	assert.NoError(t, err)
}
