package profile

import "github.com/waseertanvir/walkies-sub000/internal/models"

type SaveProfileInput struct {
	Profile *models.Profile
}

type GetProfileInput struct {
	UserID string
}
