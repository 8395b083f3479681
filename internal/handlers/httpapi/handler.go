package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/waseertanvir/walkies-sub000/internal/bus"
	"github.com/waseertanvir/walkies-sub000/internal/services/matching"
	"github.com/waseertanvir/walkies-sub000/internal/services/tracking"
)

// identityHeader carries the authenticated principal. Verification happens
// upstream at the identity provider; this service trusts the header.
const identityHeader = "X-User-ID"

// Config holds configuration for the HTTP handler
type Config struct {
	// Service dependencies
	MatchingService matching.Service
	TrackingService tracking.Service
	Bus             bus.Bus

	// Logger for request and gateway diagnostics
	Logger *logrus.Logger
}

// Handler exposes the matching engine over REST and the tracking gateway
// over websocket
type Handler struct {
	matching matching.Service
	tracking tracking.Service
	bus      bus.Bus
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.MatchingService == nil {
		return nil, errors.New("matching service cannot be nil")
	}
	if cfg.TrackingService == nil {
		return nil, errors.New("tracking service cannot be nil")
	}
	if cfg.Bus == nil {
		return nil, errors.New("bus cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	return &Handler{
		matching: cfg.MatchingService,
		tracking: cfg.TrackingService,
		bus:      cfg.Bus,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Routes builds the gin engine with all endpoints mounted
func (h *Handler) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	sessions := r.Group("/sessions", h.requireIdentity)
	sessions.POST("", h.createSession)
	sessions.GET("", h.listSessions)
	sessions.GET("/:id", h.getSession)
	sessions.PATCH("/:id", h.editSession)
	sessions.DELETE("/:id", h.deleteSession)
	sessions.POST("/:id/applications", h.apply)
	sessions.POST("/:id/accept", h.acceptApplicant)
	sessions.POST("/:id/reject", h.rejectApplicant)
	sessions.POST("/:id/start", h.advanceToInProgress)
	sessions.POST("/:id/complete", h.completeSession)
	sessions.POST("/:id/cancel", h.cancelSession)
	sessions.GET("/:id/track", h.track)

	return r
}

// requireIdentity rejects requests without an authenticated principal
func (h *Handler) requireIdentity(c *gin.Context) {
	if c.GetHeader(identityHeader) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing identity",
		})
		return
	}
	c.Next()
}

// identity returns the authenticated principal for the request
func (h *Handler) identity(c *gin.Context) string {
	return c.GetHeader(identityHeader)
}

// respondError maps service errors to HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, matching.ErrSessionNotFound),
		errors.Is(err, tracking.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, matching.ErrNotAuthorized),
		errors.Is(err, tracking.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, matching.ErrInvalidState),
		errors.Is(err, matching.ErrSessionUnavailable),
		errors.Is(err, matching.ErrDuplicateApplication),
		errors.Is(err, tracking.ErrNoActiveSession):
		status = http.StatusConflict
	case errors.Is(err, matching.ErrInvalidCompensation),
		errors.Is(err, matching.ErrInvalidSchedule),
		errors.Is(err, matching.ErrInvalidKind),
		errors.Is(err, matching.ErrPetNotOwned),
		errors.Is(err, matching.ErrOwnerApplication),
		errors.Is(err, matching.ErrApplicantNotFound):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
