package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventStream interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

type EventsHandler struct {
	stream EventStream
}

func NewEventsHandler(stream EventStream) *EventsHandler {
	return &EventsHandler{stream: stream}
}

// @Summary Spot event stream
// @Description Websocket upgrade; the server pushes {type, spotId, floorNumber, occurredAt} for every occupancy change
// @Tags events
// @Success 101
// @Router /api/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	// On failure the upgrader has already written the HTTP error response.
	if err := h.stream.Serve(c.Writer, c.Request); err != nil {
		slog.Warn("websocket upgrade failed", "error", err.Error(), "client_ip", c.ClientIP())
		c.Abort()
	}
}
