package models

import (
	"time"
)

// Pet represents a pet registered by an owner
type Pet struct {
	// ID is the unique identifier for the pet
	ID string

	// OwnerID is the user who owns the pet
	OwnerID string

	// Name is the pet's name
	Name string

	// Breed is the pet's breed, free-form
	Breed string

	// Weight is the pet's weight in kilograms
	Weight float64

	// Notes holds walking instructions for walkers
	Notes string

	// CreatedAt is when the pet was registered
	CreatedAt time.Time
}
