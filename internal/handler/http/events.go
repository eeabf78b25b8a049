package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/sse"
)

const sseHeartbeatInterval = 25 * time.Second

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	jwtService jwt.Service
	events     *sse.Hub
}

func NewEventsHandler(jwtService jwt.Service, events *sse.Hub) EventsHandler {
	return &EventsHandlerImpl{
		jwtService: jwtService,
		events:     events,
	}
}

// Stream implements EventsHandler. It holds the response open and pushes
// server-sent events (unread chat notifications, leave decisions) to the
// authenticated user. EventSource cannot set headers, so auth uses a
// short-lived token in the query string.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ValidateSSEToken(r.URL.Query().Get("token"))
	if err != nil {
		response.Unauthorized(w, "Invalid or expired stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch, cancel := h.events.Subscribe(actor.ID)
	defer cancel()

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(sseHeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case event, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
