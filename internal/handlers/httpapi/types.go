package httpapi

import (
	"time"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// createSessionRequest is the body for POST /sessions
type createSessionRequest struct {
	PetID           string             `json:"pet_id" binding:"required"`
	Kind            models.SessionKind `json:"kind" binding:"required"`
	ScheduledAt     time.Time          `json:"scheduled_at" binding:"required"`
	DurationMinutes int                `json:"duration_minutes" binding:"required"`
	Compensation    int64              `json:"compensation" binding:"required"`
}

// editSessionRequest is the body for PATCH /sessions/:id
type editSessionRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`
	Compensation    int64     `json:"compensation" binding:"required"`
}

// walkerRequest is the body for accept/reject endpoints
type walkerRequest struct {
	WalkerID string `json:"walker_id" binding:"required"`
}

// sessionResponse is the wire shape of a session
type sessionResponse struct {
	ID           string               `json:"id"`
	OwnerID      string               `json:"owner_id"`
	WalkerID     string               `json:"walker_id,omitempty"`
	PetID        string               `json:"pet_id"`
	Status       models.SessionStatus `json:"status"`
	Kind         models.SessionKind   `json:"kind"`
	ApplicantIDs []string             `json:"applicant_ids"`
	ScheduledAt  time.Time            `json:"scheduled_at"`
	DurationMins int                  `json:"duration_minutes"`
	Compensation int64                `json:"compensation"`
	StartedAt    *time.Time           `json:"started_at,omitempty"`
	EndedAt      *time.Time           `json:"ended_at,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// positionMessage is one client-to-server location report on the tracking socket
type positionMessage struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Timestamp time.Time `json:"ts"`
}

// toSessionResponse converts a model to its wire shape
func toSessionResponse(sess *models.Session) *sessionResponse {
	applicants := sess.ApplicantIDs
	if applicants == nil {
		applicants = []string{}
	}
	return &sessionResponse{
		ID:           sess.ID,
		OwnerID:      sess.OwnerID,
		WalkerID:     sess.WalkerID,
		PetID:        sess.PetID,
		Status:       sess.Status,
		Kind:         sess.Kind,
		ApplicantIDs: applicants,
		ScheduledAt:  sess.ScheduledAt,
		DurationMins: int(sess.Duration.Minutes()),
		Compensation: sess.Compensation,
		StartedAt:    sess.StartedAt,
		EndedAt:      sess.EndedAt,
		CreatedAt:    sess.CreatedAt,
	}
}
