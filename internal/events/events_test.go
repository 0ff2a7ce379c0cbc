package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecorded(t *testing.T) {
	ev, err := AuditRecorded(`{"id":"3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f","action":"update","entity_type":"assets"}`)
	require.NoError(t, err)
	assert.Equal(t, EventAuditRecorded, ev.Type)
	assert.Equal(t, "update", ev.Payload["action"])
	assert.Equal(t, "assets", ev.Payload["entity_type"])
}

func TestAuditRecordedRejectsGarbage(t *testing.T) {
	_, err := AuditRecorded("not json")
	assert.Error(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	data, err := json.Marshal(Event{Type: EventAuditRecorded, Payload: map[string]any{"id": "x"}})
	require.NoError(t, err)

	ev, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, EventAuditRecorded, ev.Type)
	assert.Equal(t, "x", ev.Payload["id"])
}
