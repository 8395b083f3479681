package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/waseertanvir/walkies-sub000/internal/bus"
	"github.com/waseertanvir/walkies-sub000/internal/models"
	"github.com/waseertanvir/walkies-sub000/internal/services/tracking"
)

// track upgrades the connection to a websocket and bridges it onto the
// presence bus. Authorization runs before the upgrade and again on every
// reconnect; a dropped socket gets no replay when it comes back.
func (h *Handler) track(c *gin.Context) {
	userID := h.identity(c)
	sessionID := c.Param("id")

	auth, err := h.tracking.Authorize(c.Request.Context(), &tracking.AuthorizeInput{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub, err := h.bus.Subscribe(c.Request.Context(), auth.Topic, userID)
	if err != nil {
		h.log.WithError(err).Error("bus subscribe failed")
		return
	}
	defer sub.Close()

	log := h.log.WithFields(logrus.Fields{
		"session": sessionID,
		"user":    userID,
		"role":    auth.Role,
	})
	log.Info("tracking channel opened")

	// Fan bus samples out to the socket until the subscription ends. The
	// roster keeps one entry per publisher; out-of-order samples it rejects
	// are silently discarded.
	roster := bus.NewRoster()
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for sample := range sub.C() {
			if !roster.Observe(sample) {
				continue
			}
			if err := conn.WriteJSON(sample); err != nil {
				return
			}
		}
		// The bus dropped the subscription. Close the socket so the blocked
		// reader fails and the client re-authorizes on reconnect; there is
		// no replay to resume from.
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription lost"),
			time.Now().Add(time.Second))
		conn.Close()
	}()

	// Fan socket position reports onto the bus until the client hangs up
	for {
		var msg positionMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("tracking socket closed")
			}
			break
		}

		sample := &models.PositionSample{
			PublisherID: userID,
			Role:        auth.Role,
			DisplayName: auth.SelfName,
			Latitude:    msg.Latitude,
			Longitude:   msg.Longitude,
			Timestamp:   msg.Timestamp,
		}
		if err := h.bus.Publish(c.Request.Context(), auth.Topic, sample); err != nil {
			log.WithError(err).Warn("position publish failed")
		}
	}

	sub.Close()
	<-writeDone
	log.Info("tracking channel closed")
}
