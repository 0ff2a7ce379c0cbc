package handlers

import (
	"testing"
	"time"

	"github.com/opsdesk/backend/internal/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFilter(t *testing.T) {
	f, err := toFilter(dto.AuditLogQuery{
		Search: "laptop",
		Action: "update",
		From:   "2026-03-01",
		To:     "2026-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "laptop", f.Search)
	assert.Equal(t, "update", f.Action)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.True(t, f.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.To.Equal(time.Date(2026, 3, 2, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)))
}

func TestToFilterRFC3339(t *testing.T) {
	f, err := toFilter(dto.AuditLogQuery{To: "2026-03-02T12:00:00Z"})
	require.NoError(t, err)
	assert.Nil(t, f.From)
	assert.True(t, f.To.Equal(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
}

func TestToFilterRejects(t *testing.T) {
	for _, q := range []dto.AuditLogQuery{
		{From: "03/01/2026"},
		{To: "soon"},
		{From: "2026-03-05", To: "2026-03-01"},
	} {
		_, err := toFilter(q)
		assert.Error(t, err, q)
	}
}
