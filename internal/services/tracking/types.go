package tracking

import (
	"github.com/waseertanvir/walkies-sub000/internal/models"
	profileRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/profile"
	sessionRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/session"
)

// Config holds configuration for the tracking service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	ProfileRepo profileRepo.Repository
}

// AuthorizeInput contains parameters for joining a session's live channel
type AuthorizeInput struct {
	// SessionID is the session whose channel is being joined
	SessionID string

	// UserID is the authenticated identity asking to join
	UserID string
}

// AuthorizeOutput contains the channel details for an authorized participant
type AuthorizeOutput struct {
	// Topic is the bus channel both participants converge on
	Topic string

	// Role is the caller's side of the session
	Role models.ParticipantRole

	// SelfName is the caller's display name, for stamping outgoing samples
	SelfName string

	// CounterpartID is the other participant's identity
	CounterpartID string

	// CounterpartName is the other participant's display name
	CounterpartName string
}
