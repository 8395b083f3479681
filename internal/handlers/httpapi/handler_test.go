package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	busMocks "github.com/waseertanvir/walkies-sub000/internal/bus/mocks"
	"github.com/waseertanvir/walkies-sub000/internal/models"
	"github.com/waseertanvir/walkies-sub000/internal/services/matching"
	matchingMocks "github.com/waseertanvir/walkies-sub000/internal/services/matching/mocks"
	trackingMocks "github.com/waseertanvir/walkies-sub000/internal/services/tracking/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockMatching *matchingMocks.MockService
	mockTracking *trackingMocks.MockService
	mockBus      *busMocks.MockBus
	router       *gin.Engine

	testTime time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatching = matchingMocks.NewMockService(s.mockCtrl)
	s.mockTracking = trackingMocks.NewMockService(s.mockCtrl)
	s.mockBus = busMocks.NewMockBus(s.mockCtrl)

	handler, err := New(&Config{
		MatchingService: s.mockMatching,
		TrackingService: s.mockTracking,
		Bus:             s.mockBus,
	})
	s.Require().NoError(err)
	s.router = handler.Routes()

	s.testTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) request(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set(identityHeader, userID)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestMissingIdentityRejected() {
	rec := s.request(http.MethodPost, "/sessions", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestCreateSession() {
	s.mockMatching.EXPECT().
		CreateSession(gomock.Any(), &matching.CreateSessionInput{
			OwnerID:      "owner-1",
			PetID:        "pet-1",
			Kind:         models.SessionKindScheduled,
			ScheduledAt:  s.testTime,
			Duration:     30 * time.Minute,
			Compensation: 1500,
		}).
		Return(&matching.CreateSessionOutput{
			Session: &models.Session{
				ID:           "sess-1",
				OwnerID:      "owner-1",
				PetID:        "pet-1",
				Status:       models.SessionStatusPending,
				Kind:         models.SessionKindScheduled,
				ApplicantIDs: []string{},
				ScheduledAt:  s.testTime,
				Duration:     30 * time.Minute,
				Compensation: 1500,
			},
		}, nil)

	rec := s.request(http.MethodPost, "/sessions", "owner-1", gin.H{
		"pet_id":           "pet-1",
		"kind":             "scheduled",
		"scheduled_at":     s.testTime,
		"duration_minutes": 30,
		"compensation":     1500,
	})

	s.Equal(http.StatusCreated, rec.Code)

	var resp sessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("sess-1", resp.ID)
	s.Equal(models.SessionStatusPending, resp.Status)
}

func (s *HandlerTestSuite) TestCreateSession_ValidationFailure() {
	s.mockMatching.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, matching.ErrInvalidCompensation)

	rec := s.request(http.MethodPost, "/sessions", "owner-1", gin.H{
		"pet_id":           "pet-1",
		"kind":             "scheduled",
		"scheduled_at":     s.testTime,
		"duration_minutes": 30,
		"compensation":     -5,
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestEditSession() {
	newStart := s.testTime.Add(3 * time.Hour)
	s.mockMatching.EXPECT().
		EditSession(gomock.Any(), &matching.EditSessionInput{
			SessionID:    "sess-1",
			OwnerID:      "owner-1",
			ScheduledAt:  newStart,
			Duration:     45 * time.Minute,
			Compensation: 2000,
		}).
		Return(&matching.EditSessionOutput{
			Session: &models.Session{
				ID:           "sess-1",
				OwnerID:      "owner-1",
				Status:       models.SessionStatusPending,
				Kind:         models.SessionKindScheduled,
				ScheduledAt:  newStart,
				Duration:     45 * time.Minute,
				Compensation: 2000,
			},
		}, nil)

	rec := s.request(http.MethodPatch, "/sessions/sess-1", "owner-1", gin.H{
		"scheduled_at":     newStart,
		"duration_minutes": 45,
		"compensation":     2000,
	})

	s.Equal(http.StatusOK, rec.Code)

	var resp sessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(2000), resp.Compensation)
	s.Equal(45, resp.DurationMins)
}

func (s *HandlerTestSuite) TestEditSession_LockedOnceAssigned() {
	s.mockMatching.EXPECT().
		EditSession(gomock.Any(), gomock.Any()).
		Return(nil, matching.ErrInvalidState)

	rec := s.request(http.MethodPatch, "/sessions/sess-1", "owner-1", gin.H{
		"scheduled_at":     s.testTime,
		"duration_minutes": 45,
		"compensation":     2000,
	})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestGetSession_IncludeDeletedForAudit() {
	s.mockMatching.EXPECT().
		GetSession(gomock.Any(), &matching.GetSessionInput{
			SessionID:      "sess-1",
			IncludeDeleted: true,
		}).
		Return(&matching.GetSessionOutput{
			Session: &models.Session{
				ID:      "sess-1",
				OwnerID: "owner-1",
				Status:  models.SessionStatusPending,
				Deleted: true,
			},
		}, nil)

	rec := s.request(http.MethodGet, "/sessions/sess-1?include_deleted=true", "owner-1", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "sess-1")
}

func (s *HandlerTestSuite) TestApply_RaceLoserGetsConflict() {
	s.mockMatching.EXPECT().
		Apply(gomock.Any(), &matching.ApplyInput{
			SessionID: "sess-1",
			WalkerID:  "walker-2",
		}).
		Return(nil, matching.ErrSessionUnavailable)

	rec := s.request(http.MethodPost, "/sessions/sess-1/applications", "walker-2", nil)

	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "no longer available")
}

func (s *HandlerTestSuite) TestAcceptApplicant_NotOwner() {
	s.mockMatching.EXPECT().
		AcceptApplicant(gomock.Any(), &matching.AcceptApplicantInput{
			SessionID: "sess-1",
			CallerID:  "walker-1",
			WalkerID:  "walker-1",
		}).
		Return(nil, matching.ErrNotAuthorized)

	rec := s.request(http.MethodPost, "/sessions/sess-1/accept", "walker-1", gin.H{
		"walker_id": "walker-1",
	})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteSession() {
	s.mockMatching.EXPECT().
		DeleteSession(gomock.Any(), &matching.DeleteSessionInput{
			SessionID: "sess-1",
			OwnerID:   "owner-1",
		}).
		Return(&matching.DeleteSessionOutput{Success: true}, nil)

	rec := s.request(http.MethodDelete, "/sessions/sess-1", "owner-1", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestGetSession_NotFound() {
	s.mockMatching.EXPECT().
		GetSession(gomock.Any(), &matching.GetSessionInput{SessionID: "missing"}).
		Return(nil, matching.ErrSessionNotFound)

	rec := s.request(http.MethodGet, "/sessions/missing", "owner-1", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestListSessions() {
	s.mockMatching.EXPECT().
		ListSessions(gomock.Any(), &matching.ListSessionsInput{
			OwnerID: "owner-1",
		}).
		Return(&matching.ListSessionsOutput{
			Sessions: []*models.Session{
				{ID: "sess-1", OwnerID: "owner-1", Status: models.SessionStatusPending},
			},
		}, nil)

	rec := s.request(http.MethodGet, "/sessions?owner_id=owner-1", "owner-1", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "sess-1")
}

func (s *HandlerTestSuite) TestCompleteSession() {
	now := s.testTime
	s.mockMatching.EXPECT().
		CompleteSession(gomock.Any(), &matching.CompleteSessionInput{
			SessionID: "sess-1",
			ActorID:   "walker-1",
		}).
		Return(&matching.CompleteSessionOutput{
			Session: &models.Session{
				ID:       "sess-1",
				OwnerID:  "owner-1",
				WalkerID: "walker-1",
				Status:   models.SessionStatusCompleted,
				EndedAt:  &now,
			},
		}, nil)

	rec := s.request(http.MethodPost, "/sessions/sess-1/complete", "walker-1", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), string(models.SessionStatusCompleted))
}
