package models

// Profile holds the display data for a user, owned by the identity
// collaborator. The core only reads it to enrich session views.
type Profile struct {
	// ID is the user's opaque identifier
	ID string

	// DisplayName is the name shown to the counterpart during a walk
	DisplayName string

	// AvatarURL points at the user's picture, if any
	AvatarURL string
}
