package eventpublisher

import (
	"context"
	"encoding/json"

	"github.com/r3labs/sse/v2"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
)

// STREAM is the SSE stream every application event is sent to.
const STREAM = "state"

type message struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}

type SSE struct {
	server *sse.Server
}

func NewSSE(server *sse.Server) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	if !server.StreamExists(STREAM) {
		server.CreateStream(STREAM)
	}
	return &SSE{server: server}
}

func (p *SSE) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(message{Name: event.Name, Payload: event.Payload})
	if err != nil {
		return err
	}
	p.server.Publish(STREAM, &sse.Event{Event: []byte(event.Name), Data: data})
	return nil
}
