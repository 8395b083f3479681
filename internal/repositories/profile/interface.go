package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/waseertanvir/walkies-sub000/internal/repositories/profile Repository

import (
	"context"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// Repository defines the interface for profile lookups
type Repository interface {
	// SaveProfile persists a profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by user ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)
}
