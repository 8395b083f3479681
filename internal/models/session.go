package models

import (
	"time"
)

// SessionStatus represents the current state of a walk session
type SessionStatus string

const (
	// SessionStatusPending indicates a session is waiting for a walker
	SessionStatusPending SessionStatus = "pending"

	// SessionStatusAccepted indicates a walker has been assigned
	SessionStatusAccepted SessionStatus = "accepted"

	// SessionStatusInProgress indicates the walk is underway
	SessionStatusInProgress SessionStatus = "in_progress"

	// SessionStatusCompleted indicates the walk finished normally
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusCancelled indicates the session was called off
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is allowed
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// IsTrackable reports whether the session may carry live position traffic
func (s SessionStatus) IsTrackable() bool {
	return s == SessionStatusAccepted || s == SessionStatusInProgress
}

// SessionKind determines how applicants are matched to a session
type SessionKind string

const (
	// SessionKindBroadcast auto-accepts the first walker who applies
	SessionKindBroadcast SessionKind = "broadcast"

	// SessionKindScheduled collects applicants for the owner to review
	SessionKindScheduled SessionKind = "scheduled"
)

// Session represents one walk engagement between an owner and a walker
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// OwnerID is the user who created the session
	OwnerID string

	// WalkerID is the assigned walker, empty until an applicant is accepted
	WalkerID string

	// PetID is the pet being walked
	PetID string

	// Status is the current state of the session
	Status SessionStatus

	// Kind controls whether applicants are auto-accepted or owner-reviewed
	Kind SessionKind

	// ApplicantIDs holds walkers who applied, in application order, no
	// duplicates. Always empty once WalkerID is set.
	ApplicantIDs []string

	// ScheduledAt is when the walk is supposed to start
	ScheduledAt time.Time

	// Duration is the planned length of the walk
	Duration time.Duration

	// Compensation is the amount offered for the walk, in cents
	Compensation int64

	// StartedAt is when the walk actually began
	StartedAt *time.Time

	// EndedAt is when the walk actually ended
	EndedAt *time.Time

	// Deleted hides the session from listings; rows are never removed
	Deleted bool

	// Version guards conditional updates; incremented on every write
	Version int64

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// HasApplicant reports whether the walker is already in the applicant list
func (s *Session) HasApplicant(walkerID string) bool {
	for _, id := range s.ApplicantIDs {
		if id == walkerID {
			return true
		}
	}
	return false
}

// IsParticipant reports whether the identity is the owner or the assigned walker
func (s *Session) IsParticipant(userID string) bool {
	return userID == s.OwnerID || (s.WalkerID != "" && userID == s.WalkerID)
}
