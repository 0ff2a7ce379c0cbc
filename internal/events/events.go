package events

import "context"

// Channel carrying audit trail hints.
const StreamAudit = "events:audit"

// Event types
const (
	EventAuditRecorded = "audit_recorded"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
