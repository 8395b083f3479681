package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/waseertanvir/walkies-sub000/internal/repositories/session Repository

import (
	"context"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a brand-new session
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID. Soft-deleted sessions are
	// returned with Deleted set; callers decide whether they count.
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSession writes a session guarded by its expected version.
	// Returns ErrVersionConflict when another writer got there first.
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	// ListSessions retrieves sessions matching a filter
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
