package pet

import "github.com/waseertanvir/walkies-sub000/internal/models"

type SavePetInput struct {
	Pet *models.Pet
}

type GetPetInput struct {
	PetID string
}

type GetPetsByOwnerInput struct {
	OwnerID string
}
