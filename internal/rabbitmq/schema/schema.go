package schema

import (
	"encoding/json"
	"time"
)

// Event is the AMQP message body for application events. The routing key
// is the event name.
type Event struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func (ev *Event) Marshal() ([]byte, error) {
	return json.Marshal(ev)
}

func (ev *Event) Unmarshal(data []byte) error {
	return json.Unmarshal(data, ev)
}
