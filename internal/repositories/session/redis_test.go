package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestSession(id string) *models.Session {
	return &models.Session{
		ID:           id,
		OwnerID:      "owner-1",
		PetID:        "pet-1",
		Status:       models.SessionStatusPending,
		Kind:         models.SessionKindScheduled,
		ApplicantIDs: []string{},
		ScheduledAt:  s.testNow.Add(time.Hour),
		Duration:     30 * time.Minute,
		Compensation: 1500,
		Version:      1,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	sess := s.newTestSession("sess-1")

	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "sess-1",
	})
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
	s.Equal(sess.OwnerID, retrieved.OwnerID)
	s.Equal(models.SessionStatusPending, retrieved.Status)
	s.Equal(int64(1), retrieved.Version)
	s.Empty(retrieved.ApplicantIDs)
}

func (s *RedisRepositoryTestSuite) TestCreateSession_DuplicateID() {
	sess := s.newTestSession("sess-1")

	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	err = s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().ErrorIs(err, ErrSessionExists)
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateSession_IncrementsVersion() {
	sess := s.newTestSession("sess-1")
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	mutated := *sess
	mutated.ApplicantIDs = []string{"walker-1"}

	updated, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         &mutated,
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Version)
	s.Equal([]string{"walker-1"}, updated.ApplicantIDs)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal(int64(2), retrieved.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateSession_VersionConflict() {
	sess := s.newTestSession("sess-1")
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	first := *sess
	first.ApplicantIDs = []string{"walker-1"}
	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         &first,
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)

	// A second writer that read version 1 loses
	second := *sess
	second.ApplicantIDs = []string{"walker-2"}
	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         &second,
		ExpectedVersion: 1,
	})
	s.Require().ErrorIs(err, ErrVersionConflict)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal([]string{"walker-1"}, retrieved.ApplicantIDs)
}

func (s *RedisRepositoryTestSuite) TestUpdateSession_NotFound() {
	sess := s.newTestSession("missing")
	_, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         sess,
		ExpectedVersion: 1,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestListSessions_ByOwnerAndStatus() {
	pendingSess := s.newTestSession("sess-1")
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: pendingSess})
	s.Require().NoError(err)

	otherOwner := s.newTestSession("sess-2")
	otherOwner.OwnerID = "owner-2"
	err = s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: otherOwner})
	s.Require().NoError(err)

	out, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		OwnerID: "owner-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("sess-1", out.Sessions[0].ID)

	out, err = s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Status: models.SessionStatusPending,
	})
	s.Require().NoError(err)
	s.Len(out.Sessions, 2)
}

func (s *RedisRepositoryTestSuite) TestListSessions_ByWalkerAfterAssignment() {
	sess := s.newTestSession("sess-1")
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	accepted := *sess
	accepted.WalkerID = "walker-1"
	accepted.Status = models.SessionStatusAccepted
	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         &accepted,
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)

	out, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		WalkerID: "walker-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("sess-1", out.Sessions[0].ID)

	// The status index moved along with the transition
	out, err = s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Status: models.SessionStatusPending,
	})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *RedisRepositoryTestSuite) TestListSessions_SoftDeleteVisibility() {
	sess := s.newTestSession("sess-1")
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	deleted := *sess
	deleted.Deleted = true
	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		Session:         &deleted,
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)

	out, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		OwnerID: "owner-1",
	})
	s.Require().NoError(err)
	s.Empty(out.Sessions)

	// Still retrievable for audit
	out, err = s.repo.ListSessions(context.Background(), &ListSessionsInput{
		OwnerID:        "owner-1",
		IncludeDeleted: true,
	})
	s.Require().NoError(err)
	s.Len(out.Sessions, 1)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.True(retrieved.Deleted)
}
