package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ChangeRecord is one raw row of the audit_logs table. Rows are append-only and have been
// written by several generations of the surrounding system, so most columns are optional
// and the legacy columns (Operation, TableName, RecordID, OldData, NewData) stand in for the
// canonical ones on older rows.
type ChangeRecord struct {
	ID          string          `json:"id"`
	ActorUserID *string         `json:"actor_user_id,omitempty"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    *string         `json:"entity_id,omitempty"`
	BeforeState json.RawMessage `json:"before_state,omitempty"`
	AfterState  json.RawMessage `json:"after_state,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Department  *string         `json:"department,omitempty"`

	Operation *string         `json:"operation,omitempty"`
	TableName *string         `json:"table_name,omitempty"`
	RecordID  *string         `json:"record_id,omitempty"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
}

// Internal bookkeeping actions that are never shown in the audit trail.
const (
	ActionSync         = "sync"
	ActionMigrate      = "migrate"
	ActionUpdateSchema = "update_schema"
	ActionMigration    = "migration"
)

var SystemActions = []string{ActionSync, ActionMigrate, ActionUpdateSchema, ActionMigration}

func IsSystemAction(action string) bool {
	a := strings.ToLower(strings.TrimSpace(action))
	for _, s := range SystemActions {
		if a == s {
			return true
		}
	}
	return false
}

// NormalizedAction returns the lower-cased action, falling back to the legacy operation column.
func (r ChangeRecord) NormalizedAction() string {
	a := strings.TrimSpace(r.Action)
	if a == "" && r.Operation != nil {
		a = strings.TrimSpace(*r.Operation)
	}
	return strings.ToLower(a)
}

// NormalizedEntityType returns the lower-cased entity type, falling back to the legacy
// table_name column.
func (r ChangeRecord) NormalizedEntityType() string {
	t := strings.TrimSpace(r.EntityType)
	if t == "" && r.TableName != nil {
		t = strings.TrimSpace(*r.TableName)
	}
	return strings.ToLower(t)
}

// NormalizedEntityID returns the entity id, falling back to the legacy record_id column.
func (r ChangeRecord) NormalizedEntityID() string {
	if r.EntityID != nil {
		if id := strings.TrimSpace(*r.EntityID); id != "" {
			return id
		}
	}
	if r.RecordID != nil {
		return strings.TrimSpace(*r.RecordID)
	}
	return ""
}

// Before returns the parsed before-state, never nil.
func (r ChangeRecord) Before() Payload {
	return firstPayload(r.BeforeState, r.OldData, r.Metadata, "before_state", "before", "old_values")
}

// After returns the parsed after-state, never nil.
func (r ChangeRecord) After() Payload {
	return firstPayload(r.AfterState, r.NewData, r.Metadata, "after_state", "after", "new_values")
}

func firstPayload(primary, legacy, metadata json.RawMessage, metaKeys ...string) Payload {
	if p := ParsePayload(primary); p != nil {
		return p
	}
	if p := ParsePayload(legacy); p != nil {
		return p
	}
	if meta := ParsePayload(metadata); meta != nil {
		for _, k := range metaKeys {
			if p := meta.Object(k); p != nil {
				return p
			}
		}
	}
	return Payload{}
}
