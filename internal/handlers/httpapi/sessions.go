package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/waseertanvir/walkies-sub000/internal/models"
	"github.com/waseertanvir/walkies-sub000/internal/services/matching"
)

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.matching.CreateSession(c.Request.Context(), &matching.CreateSessionInput{
		OwnerID:      h.identity(c),
		PetID:        req.PetID,
		Kind:         req.Kind,
		ScheduledAt:  req.ScheduledAt,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
		Compensation: req.Compensation,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(output.Session))
}

func (h *Handler) listSessions(c *gin.Context) {
	output, err := h.matching.ListSessions(c.Request.Context(), &matching.ListSessionsInput{
		OwnerID:  c.Query("owner_id"),
		WalkerID: c.Query("walker_id"),
		Status:   models.SessionStatus(c.Query("status")),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	sessions := make([]*sessionResponse, 0, len(output.Sessions))
	for _, sess := range output.Sessions {
		sessions = append(sessions, toSessionResponse(sess))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) editSession(c *gin.Context) {
	var req editSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.matching.EditSession(c.Request.Context(), &matching.EditSessionInput{
		SessionID:    c.Param("id"),
		OwnerID:      h.identity(c),
		ScheduledAt:  req.ScheduledAt,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
		Compensation: req.Compensation,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) getSession(c *gin.Context) {
	output, err := h.matching.GetSession(c.Request.Context(), &matching.GetSessionInput{
		SessionID:      c.Param("id"),
		IncludeDeleted: c.Query("include_deleted") == "true",
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) deleteSession(c *gin.Context) {
	_, err := h.matching.DeleteSession(c.Request.Context(), &matching.DeleteSessionInput{
		SessionID: c.Param("id"),
		OwnerID:   h.identity(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) apply(c *gin.Context) {
	output, err := h.matching.Apply(c.Request.Context(), &matching.ApplyInput{
		SessionID: c.Param("id"),
		WalkerID:  h.identity(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":       toSessionResponse(output.Session),
		"auto_accepted": output.AutoAccepted,
	})
}

func (h *Handler) acceptApplicant(c *gin.Context) {
	var req walkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.matching.AcceptApplicant(c.Request.Context(), &matching.AcceptApplicantInput{
		SessionID: c.Param("id"),
		CallerID:  h.identity(c),
		WalkerID:  req.WalkerID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) rejectApplicant(c *gin.Context) {
	var req walkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.matching.RejectApplicant(c.Request.Context(), &matching.RejectApplicantInput{
		SessionID: c.Param("id"),
		CallerID:  h.identity(c),
		WalkerID:  req.WalkerID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) advanceToInProgress(c *gin.Context) {
	output, err := h.matching.AdvanceToInProgress(c.Request.Context(), &matching.AdvanceToInProgressInput{
		SessionID: c.Param("id"),
		ActorID:   h.identity(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) completeSession(c *gin.Context) {
	output, err := h.matching.CompleteSession(c.Request.Context(), &matching.CompleteSessionInput{
		SessionID: c.Param("id"),
		ActorID:   h.identity(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}

func (h *Handler) cancelSession(c *gin.Context) {
	output, err := h.matching.CancelSession(c.Request.Context(), &matching.CancelSessionInput{
		SessionID: c.Param("id"),
		ActorID:   h.identity(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(output.Session))
}
