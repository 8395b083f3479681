package matching

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/waseertanvir/walkies-sub000/internal/services/matching Service

import "context"

// Service defines the interface for the session matching engine
type Service interface {
	// CreateSession opens a new pending walk session for one of the owner's pets
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// EditSession updates a pending session's scheduling terms
	EditSession(ctx context.Context, input *EditSessionInput) (*EditSessionOutput, error)

	// Apply records a walker's interest in a pending session. Broadcast
	// sessions accept the first applicant on the spot.
	Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error)

	// AcceptApplicant assigns one of the applicants as the session's walker
	AcceptApplicant(ctx context.Context, input *AcceptApplicantInput) (*AcceptApplicantOutput, error)

	// RejectApplicant removes a walker from the applicant list. Rejecting
	// someone who never applied is a no-op.
	RejectApplicant(ctx context.Context, input *RejectApplicantInput) (*RejectApplicantOutput, error)

	// AdvanceToInProgress marks an accepted session as underway
	AdvanceToInProgress(ctx context.Context, input *AdvanceToInProgressInput) (*AdvanceToInProgressOutput, error)

	// CompleteSession marks an in-progress session as finished
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// CancelSession calls off a pending or accepted session
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// DeleteSession soft-deletes a pending session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions retrieves sessions matching a filter
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
