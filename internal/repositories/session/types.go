package session

import "github.com/waseertanvir/walkies-sub000/internal/models"

type CreateSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type UpdateSessionInput struct {
	// Session is the desired new state, including the mutation already applied
	Session *models.Session

	// ExpectedVersion is the version the caller read before mutating
	ExpectedVersion int64
}

type ListSessionsInput struct {
	// OwnerID filters to sessions created by this user, if set
	OwnerID string

	// WalkerID filters to sessions assigned to this walker, if set
	WalkerID string

	// Status filters to sessions in this state, if set
	Status models.SessionStatus

	// IncludeDeleted includes soft-deleted sessions in the result
	IncludeDeleted bool
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}
