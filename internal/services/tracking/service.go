package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/waseertanvir/walkies-sub000/internal/models"
	profileRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/profile"
	sessionRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/session"
)

// TopicForSession derives the bus topic from the session id alone, so both
// participants land on the same channel without a discovery round-trip
func TopicForSession(sessionID string) string {
	return fmt.Sprintf("walk:%s:positions", sessionID)
}

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	profileRepo profileRepo.Repository
}

// New creates a new tracking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		profileRepo: cfg.ProfileRepo,
	}, nil
}

// Authorize checks that the identity may join the session's live channel.
// Called on every connect and reconnect; state is read fresh each time.
func (s *service) Authorize(ctx context.Context, input *AuthorizeInput) (*AuthorizeOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if sess.Deleted {
		return nil, ErrSessionNotFound
	}

	if !sess.IsParticipant(input.UserID) {
		return nil, ErrNotAuthorized
	}
	if !sess.Status.IsTrackable() {
		return nil, ErrNoActiveSession
	}

	role := models.RoleWalker
	counterpartID := sess.OwnerID
	if input.UserID == sess.OwnerID {
		role = models.RoleOwner
		counterpartID = sess.WalkerID
	}

	return &AuthorizeOutput{
		Topic:           TopicForSession(sess.ID),
		Role:            role,
		SelfName:        s.displayName(ctx, input.UserID),
		CounterpartID:   counterpartID,
		CounterpartName: s.displayName(ctx, counterpartID),
	}, nil
}

// displayName resolves a user's display name, falling back to the raw id.
// Profiles only enrich the view; a missing one never blocks tracking.
func (s *service) displayName(ctx context.Context, userID string) string {
	prof, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		return userID
	}
	return prof.DisplayName
}
