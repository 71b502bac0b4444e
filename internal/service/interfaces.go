package service

import (
	"context"

	"github.com/google/uuid"
)

// ImageUploader abstracts recipe image storage so handlers can be tested
// without S3.
type ImageUploader interface {
	UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, data []byte, contentType string) (string, error)
}

var _ ImageUploader = (*ImageService)(nil)
