package models

import (
	"time"
)

// ParticipantRole identifies which side of a session published a sample
type ParticipantRole string

const (
	// RoleOwner is the pet-owning party
	RoleOwner ParticipantRole = "owner"

	// RoleWalker is the service-providing party
	RoleWalker ParticipantRole = "walker"
)

// PositionSample is one timestamped coordinate broadcast by a session
// participant. Samples exist only for delivery; nothing retains them.
type PositionSample struct {
	// PublisherID is the user who sent the sample
	PublisherID string `json:"publisher_id"`

	// Role is the publisher's side of the session
	Role ParticipantRole `json:"role"`

	// DisplayName is the publisher's display name
	DisplayName string `json:"display_name"`

	// Latitude in decimal degrees
	Latitude float64 `json:"lat"`

	// Longitude in decimal degrees
	Longitude float64 `json:"lng"`

	// Timestamp is when the sample was taken at the publisher
	Timestamp time.Time `json:"ts"`
}
