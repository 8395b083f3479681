package pet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/waseertanvir/walkies-sub000/internal/repositories/pet Repository

import (
	"context"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// Repository defines the interface for pet data persistence
type Repository interface {
	// SavePet persists a pet
	SavePet(ctx context.Context, input *SavePetInput) error

	// GetPet retrieves a pet by ID
	GetPet(ctx context.Context, input *GetPetInput) (*models.Pet, error)

	// GetPetsByOwner retrieves all pets registered by an owner
	GetPetsByOwner(ctx context.Context, input *GetPetsByOwnerInput) ([]*models.Pet, error)
}
