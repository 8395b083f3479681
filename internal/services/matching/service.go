package matching

import (
	"context"
	"errors"

	"github.com/waseertanvir/walkies-sub000/internal/common/clock"
	"github.com/waseertanvir/walkies-sub000/internal/common/uuid"
	"github.com/waseertanvir/walkies-sub000/internal/models"
	petRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/pet"
	sessionRepo "github.com/waseertanvir/walkies-sub000/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	petRepo     petRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new matching service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.PetRepo == nil {
		return nil, ErrNilPetRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		petRepo:     cfg.PetRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

// CreateSession opens a new pending walk session for one of the owner's pets
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input.Compensation <= 0 {
		return nil, ErrInvalidCompensation
	}
	if input.ScheduledAt.IsZero() || input.Duration <= 0 {
		return nil, ErrInvalidSchedule
	}
	if input.Kind != models.SessionKindBroadcast && input.Kind != models.SessionKindScheduled {
		return nil, ErrInvalidKind
	}

	pet, err := s.petRepo.GetPet(ctx, &petRepo.GetPetInput{
		PetID: input.PetID,
	})
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			return nil, ErrPetNotOwned
		}
		return nil, err
	}
	if pet.OwnerID != input.OwnerID {
		return nil, ErrPetNotOwned
	}

	now := s.clock.Now()
	sess := &models.Session{
		ID:           s.uuid.NewUUID(),
		OwnerID:      input.OwnerID,
		PetID:        input.PetID,
		Status:       models.SessionStatusPending,
		Kind:         input.Kind,
		ApplicantIDs: []string{},
		ScheduledAt:  input.ScheduledAt,
		Duration:     input.Duration,
		Compensation: input.Compensation,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: sess}, nil
}

// EditSession updates the scheduling attributes of a pending session. Once
// a walker is assigned the terms are locked; the owner cancels and re-posts
// instead.
func (s *service) EditSession(ctx context.Context, input *EditSessionInput) (*EditSessionOutput, error) {
	if input.Compensation <= 0 {
		return nil, ErrInvalidCompensation
	}
	if input.ScheduledAt.IsZero() || input.Duration <= 0 {
		return nil, ErrInvalidSchedule
	}

	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != sess.OwnerID {
		return nil, ErrNotAuthorized
	}
	if sess.Status != models.SessionStatusPending {
		return nil, ErrInvalidState
	}

	next := *sess
	next.ScheduledAt = input.ScheduledAt
	next.Duration = input.Duration
	next.Compensation = input.Compensation
	next.UpdatedAt = s.clock.Now()

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &EditSessionOutput{Session: updated}, nil
}

// Apply records a walker's interest in a pending session. For broadcast
// sessions the applicant is accepted in the same guarded write, so two
// racing walkers can never both be assigned.
func (s *service) Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusPending {
		return nil, ErrInvalidState
	}
	if input.WalkerID == sess.OwnerID {
		return nil, ErrOwnerApplication
	}
	if sess.HasApplicant(input.WalkerID) {
		return nil, ErrDuplicateApplication
	}

	next := *sess
	autoAccepted := false

	switch sess.Kind {
	case models.SessionKindBroadcast:
		next.WalkerID = input.WalkerID
		next.ApplicantIDs = []string{}
		next.Status = models.SessionStatusAccepted
		autoAccepted = true
	default:
		applicants := make([]string, 0, len(sess.ApplicantIDs)+1)
		applicants = append(applicants, sess.ApplicantIDs...)
		next.ApplicantIDs = append(applicants, input.WalkerID)
	}
	next.UpdatedAt = s.clock.Now()

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &ApplyOutput{
		Session:      updated,
		AutoAccepted: autoAccepted,
	}, nil
}

// AcceptApplicant assigns one of the applicants as the session's walker.
// The walker assignment, applicant-list clear and status transition land in
// one guarded write.
func (s *service) AcceptApplicant(ctx context.Context, input *AcceptApplicantInput) (*AcceptApplicantOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.CallerID != sess.OwnerID {
		return nil, ErrNotAuthorized
	}
	if sess.Status != models.SessionStatusPending {
		return nil, ErrInvalidState
	}
	if !sess.HasApplicant(input.WalkerID) {
		return nil, ErrApplicantNotFound
	}

	next := *sess
	next.WalkerID = input.WalkerID
	next.ApplicantIDs = []string{}
	next.Status = models.SessionStatusAccepted
	next.UpdatedAt = s.clock.Now()

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &AcceptApplicantOutput{Session: updated}, nil
}

// RejectApplicant removes a walker from the applicant list. Rejecting a
// walker who is not on the list is a no-op, not an error.
func (s *service) RejectApplicant(ctx context.Context, input *RejectApplicantInput) (*RejectApplicantOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.CallerID != sess.OwnerID {
		return nil, ErrNotAuthorized
	}
	if !sess.HasApplicant(input.WalkerID) {
		return &RejectApplicantOutput{Session: sess}, nil
	}

	applicants := make([]string, 0, len(sess.ApplicantIDs))
	for _, id := range sess.ApplicantIDs {
		if id != input.WalkerID {
			applicants = append(applicants, id)
		}
	}

	next := *sess
	next.ApplicantIDs = applicants
	next.UpdatedAt = s.clock.Now()

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &RejectApplicantOutput{Session: updated}, nil
}

// AdvanceToInProgress marks an accepted session as underway
func (s *service) AdvanceToInProgress(ctx context.Context, input *AdvanceToInProgressInput) (*AdvanceToInProgressOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusAccepted {
		return nil, ErrInvalidState
	}
	if !sess.IsParticipant(input.ActorID) {
		return nil, ErrNotAuthorized
	}

	now := s.clock.Now()
	next := *sess
	next.Status = models.SessionStatusInProgress
	next.StartedAt = &now
	next.UpdatedAt = now

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &AdvanceToInProgressOutput{Session: updated}, nil
}

// CompleteSession marks an in-progress session as finished and stamps the end time
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusInProgress {
		return nil, ErrInvalidState
	}
	if !sess.IsParticipant(input.ActorID) {
		return nil, ErrNotAuthorized
	}

	now := s.clock.Now()
	next := *sess
	next.Status = models.SessionStatusCompleted
	next.EndedAt = &now
	next.UpdatedAt = now

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &CompleteSessionOutput{Session: updated}, nil
}

// CancelSession calls off a pending or accepted session. Any walker
// assignment is cleared so the cancelled row satisfies the walker/status
// invariant.
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.ActorID != sess.OwnerID {
		return nil, ErrNotAuthorized
	}
	if sess.Status != models.SessionStatusPending && sess.Status != models.SessionStatusAccepted {
		return nil, ErrInvalidState
	}

	next := *sess
	next.WalkerID = ""
	next.ApplicantIDs = []string{}
	next.Status = models.SessionStatusCancelled
	next.UpdatedAt = s.clock.Now()

	updated, err := s.guardedUpdate(ctx, &next, sess.Version)
	if err != nil {
		return nil, err
	}

	return &CancelSessionOutput{Session: updated}, nil
}

// DeleteSession soft-deletes a pending session. The row stays behind for
// audit but disappears from listings.
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	sess, err := s.getLiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != sess.OwnerID {
		return nil, ErrNotAuthorized
	}
	if sess.Status != models.SessionStatusPending {
		return nil, ErrInvalidState
	}

	next := *sess
	next.Deleted = true
	next.UpdatedAt = s.clock.Now()

	if _, err := s.guardedUpdate(ctx, &next, sess.Version); err != nil {
		return nil, err
	}

	return &DeleteSessionOutput{Success: true}, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if sess.Deleted && !input.IncludeDeleted {
		return nil, ErrSessionNotFound
	}

	return &GetSessionOutput{Session: sess}, nil
}

// ListSessions retrieves non-deleted sessions matching the filter
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		OwnerID:  input.OwnerID,
		WalkerID: input.WalkerID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{Sessions: out.Sessions}, nil
}

// getLiveSession fetches a session, treating missing and soft-deleted rows
// the same way mutating operations should: as not found
func (s *service) getLiveSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
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

	return sess, nil
}

// guardedUpdate writes the session conditionally on the version the caller
// read. Losing the race means the session moved on under us, which callers
// surface as "no longer available".
func (s *service) guardedUpdate(ctx context.Context, next *models.Session, expectedVersion int64) (*models.Session, error) {
	updated, err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		Session:         next,
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrVersionConflict) {
			return nil, ErrSessionUnavailable
		}
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return updated, nil
}
