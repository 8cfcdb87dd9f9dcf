package events

import (
	"net/http"

	"github.com/r3labs/sse/v2"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/logging"
	"remindu/internal/http/handlers/response"
	eventpublisher "remindu/internal/implementations/event_publisher"
)

// Handler streams application events to the client. Only the state
// stream can be subscribed to.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	switch query.Get("stream") {
	case "":
		query.Set("stream", eventpublisher.STREAM)
		r.URL.RawQuery = query.Encode()
	case eventpublisher.STREAM:
	default:
		response.RenderError(rw, "unknown stream", http.StatusNotFound)
		return
	}

	h.log.Info(r.Context(), "Subscribed to state events.")
	h.sseServer.ServeHTTP(rw, r)
	h.log.Info(r.Context(), "Unsubscribed from state events.")
}
