package models

import "time"

// Display fallbacks.
const (
	NoTarget = "-"
	Unknown  = "Unknown"
	System   = "System"
)

type ActorSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ResolvedLogEntry is a ChangeRecord with its references resolved into display labels.
type ResolvedLogEntry struct {
	ID          string    `json:"id"`
	ActorUserID *string   `json:"actor_user_id,omitempty"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *string   `json:"entity_id,omitempty"`
	BeforeState Payload   `json:"before_state"`
	AfterState  Payload   `json:"after_state"`
	OccurredAt  time.Time `json:"occurred_at"`
	Department  *string   `json:"department,omitempty"`

	Actor                *ActorSummary `json:"actor,omitempty"`
	ActorName            string        `json:"actor_name"`
	Target               string        `json:"target"`
	NormalizedCategory   string        `json:"normalized_category"`
	ObjectIdentifier     string        `json:"object_identifier"`
	DepartmentOrLocation string        `json:"department_or_location"`

	// CurrentHolder is who holds an asset today. It is informational only and is never
	// used as the target of a historical event.
	CurrentHolder string `json:"current_holder,omitempty"`
}
