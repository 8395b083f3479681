package tracking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/waseertanvir/walkies-sub000/internal/services/tracking Service

import "context"

// Service gates access to the presence bus by session state. It never
// caches: every call re-reads the session, so a walk that completed while a
// client was disconnected refuses re-entry.
type Service interface {
	// Authorize checks that the identity may join the session's live
	// channel and returns the topic plus the counterpart's details
	Authorize(ctx context.Context, input *AuthorizeInput) (*AuthorizeOutput, error)
}
