package matching

import (
	"time"

	"github.com/waseertanvir/walkies-sub000/internal/common/clock"
	"github.com/waseertanvir/walkies-sub000/internal/common/uuid"
	"github.com/waseertanvir/walkies-sub000/internal/models"
	petRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/pet"
	sessionRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/session"
)

// Config holds configuration for the matching service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	PetRepo     petRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a new walk session
type CreateSessionInput struct {
	// OwnerID is the authenticated user creating the session
	OwnerID string

	// PetID is the pet to be walked; must belong to the owner
	PetID string

	// Kind selects broadcast (first applicant wins) or scheduled (owner reviews)
	Kind models.SessionKind

	// ScheduledAt is when the walk should start
	ScheduledAt time.Time

	// Duration is the planned length of the walk
	Duration time.Duration

	// Compensation is the amount offered, in cents; must be positive
	Compensation int64
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// Session is the newly created pending session
	Session *models.Session
}

// EditSessionInput contains parameters for editing a pending session's terms
type EditSessionInput struct {
	// SessionID is the session being edited
	SessionID string

	// OwnerID is the authenticated user; must be the session owner
	OwnerID string

	// ScheduledAt is the new start time
	ScheduledAt time.Time

	// Duration is the new planned length of the walk
	Duration time.Duration

	// Compensation is the new amount offered, in cents; must be positive
	Compensation int64
}

// EditSessionOutput contains the result of editing
type EditSessionOutput struct {
	// Session is the session with the updated terms
	Session *models.Session
}

// ApplyInput contains parameters for a walker applying to a session
type ApplyInput struct {
	// SessionID is the session being applied to
	SessionID string

	// WalkerID is the authenticated walker applying
	WalkerID string
}

// ApplyOutput contains the result of applying
type ApplyOutput struct {
	// Session is the session after the application
	Session *models.Session

	// AutoAccepted is true when a broadcast session assigned the walker immediately
	AutoAccepted bool
}

// AcceptApplicantInput contains parameters for accepting an applicant
type AcceptApplicantInput struct {
	// SessionID is the session whose applicant is being accepted
	SessionID string

	// CallerID is the authenticated user; must be the session owner
	CallerID string

	// WalkerID is the applicant being accepted
	WalkerID string
}

// AcceptApplicantOutput contains the result of accepting an applicant
type AcceptApplicantOutput struct {
	// Session is the session after acceptance
	Session *models.Session
}

// RejectApplicantInput contains parameters for rejecting an applicant
type RejectApplicantInput struct {
	// SessionID is the session whose applicant is being rejected
	SessionID string

	// CallerID is the authenticated user; must be the session owner
	CallerID string

	// WalkerID is the applicant being removed
	WalkerID string
}

// RejectApplicantOutput contains the result of rejecting an applicant
type RejectApplicantOutput struct {
	// Session is the session after the rejection
	Session *models.Session
}

// AdvanceToInProgressInput contains parameters for starting the walk
type AdvanceToInProgressInput struct {
	// SessionID is the session being started
	SessionID string

	// ActorID is the authenticated user; must be the owner or the assigned walker
	ActorID string
}

// AdvanceToInProgressOutput contains the result of starting the walk
type AdvanceToInProgressOutput struct {
	// Session is the session after the transition
	Session *models.Session
}

// CompleteSessionInput contains parameters for completing the walk
type CompleteSessionInput struct {
	// SessionID is the session being completed
	SessionID string

	// ActorID is the authenticated user; must be the owner or the assigned walker
	ActorID string
}

// CompleteSessionOutput contains the result of completing the walk
type CompleteSessionOutput struct {
	// Session is the terminal, completed session
	Session *models.Session
}

// CancelSessionInput contains parameters for cancelling a session
type CancelSessionInput struct {
	// SessionID is the session being cancelled
	SessionID string

	// ActorID is the authenticated user; must be the session owner
	ActorID string
}

// CancelSessionOutput contains the result of cancelling
type CancelSessionOutput struct {
	// Session is the terminal, cancelled session
	Session *models.Session
}

// DeleteSessionInput contains parameters for soft-deleting a session
type DeleteSessionInput struct {
	// SessionID is the session being deleted
	SessionID string

	// OwnerID is the authenticated user; must be the session owner
	OwnerID string
}

// DeleteSessionOutput contains the result of soft-deleting
type DeleteSessionOutput struct {
	// Success indicates the session is now hidden from listings
	Success bool
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// SessionID is the session to retrieve
	SessionID string

	// IncludeDeleted returns soft-deleted sessions too, for audit views
	IncludeDeleted bool
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	// Session is the retrieved session
	Session *models.Session
}

// ListSessionsInput contains filter parameters for listings
type ListSessionsInput struct {
	// OwnerID filters to sessions created by this user, if set
	OwnerID string

	// WalkerID filters to sessions assigned to this walker, if set
	WalkerID string

	// Status filters to sessions in this state, if set
	Status models.SessionStatus
}

// ListSessionsOutput contains the matching sessions
type ListSessionsOutput struct {
	// Sessions holds every non-deleted session matching the filter
	Sessions []*models.Session
}
