package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opsdesk/backend/internal/auth"
	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/http/dto"
	"github.com/opsdesk/backend/internal/http/handlers"
	"github.com/opsdesk/backend/internal/mocks"
	"github.com/opsdesk/backend/internal/models"
	"github.com/opsdesk/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, records *mocks.RecordSource) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:          testSecret,
		AuditFetchLimit:    500,
		AuditLookupTimeout: time.Second,
		CORSOrigins:        "*",
		RateLimitPerMinute: 100,
	}
	log := zap.NewNop()
	svc := services.NewAuditService(records, &mocks.LookupStore{}, cfg, log)

	app := fiber.New()
	SetupRouter(app, cfg, log, nil, handlers.NewAuditHandler(svc, log), nil)
	return app
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := auth.GenerateJWT(testSecret, uuid.New(), role, time.Hour)
	require.NoError(t, err)
	return tok
}

func get(t *testing.T, app *fiber.App, path, role string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

type listResponse struct {
	OK   bool               `json:"ok"`
	Data services.AuditList `json:"data"`
}

func sampleRecords() []models.ChangeRecord {
	return []models.ChangeRecord{
		{
			ID: "1", Action: "update", EntityType: "projects", OccurredAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			AfterState: json.RawMessage(`{"name":"Office move"}`),
		},
		{
			ID: "2", Action: "create", EntityType: "projects", OccurredAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			AfterState: json.RawMessage(`{"name":"Launch"}`),
		},
	}
}

func TestHealthAndMeta(t *testing.T) {
	app := newTestApp(t, &mocks.RecordSource{})

	status, _ := get(t, app, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body := get(t, app, "/api/v1/meta/audit-categories", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"Assets"`)
	assert.Contains(t, string(body), `"update_schema"`)

	status, _ = get(t, app, "/metrics", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAuditLogsRequireAdmin(t *testing.T) {
	app := newTestApp(t, &mocks.RecordSource{})

	status, _ := get(t, app, "/api/v1/admin/audit-logs", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := get(t, app, "/api/v1/admin/audit-logs", "employee")
	assert.Equal(t, fiber.StatusForbidden, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "admin access required", errResp.Error)
	assert.NotEmpty(t, errResp.RequestID)
}

func TestListAuditLogs(t *testing.T) {
	records := &mocks.RecordSource{}
	records.On("ListRecent", mock.Anything, mock.Anything).Return(sampleRecords(), nil)
	app := newTestApp(t, records)

	status, body := get(t, app, "/api/v1/admin/audit-logs?from=2026-03-12&to=2026-03-14", "admin")
	require.Equal(t, fiber.StatusOK, status, string(body))

	var resp listResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 2, resp.Data.Total)
	require.Len(t, resp.Data.Entries, 1)
	e := resp.Data.Entries[0]
	assert.Equal(t, "1", e.ID)
	assert.Equal(t, "Projects", e.NormalizedCategory)
	assert.Equal(t, "Office move", e.ObjectIdentifier)
	assert.Equal(t, "Office move", e.AfterState.String("name"))
}

func TestListAuditLogsHidesPayloadsFromHR(t *testing.T) {
	records := &mocks.RecordSource{}
	records.On("ListRecent", mock.Anything, mock.Anything).Return(sampleRecords(), nil)
	app := newTestApp(t, records)

	status, body := get(t, app, "/api/v1/admin/audit-logs?action=update", "hr")
	require.Equal(t, fiber.StatusOK, status)

	var resp listResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data.Entries, 1)
	assert.Empty(t, resp.Data.Entries[0].AfterState)
	assert.Equal(t, "Office move", resp.Data.Entries[0].ObjectIdentifier)
	assert.Contains(t, string(body), `"after_state":{}`)
}

func TestListAuditLogsBadDate(t *testing.T) {
	app := newTestApp(t, &mocks.RecordSource{})

	status, _ := get(t, app, "/api/v1/admin/audit-logs?from=yesterday", "admin")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = get(t, app, "/api/v1/admin/audit-logs?from=2026-03-14&to=2026-03-01", "admin")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAuditFetchErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing table", &pgconn.PgError{Code: "42P01"}, fiber.StatusNotFound, "audit log table not found"},
		{"permission", &pgconn.PgError{Code: "42501"}, fiber.StatusForbidden, "permission denied reading audit logs"},
		{"other", &pgconn.PgError{Code: "08006"}, fiber.StatusInternalServerError, "failed to load audit logs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &mocks.RecordSource{}
			records.On("ListRecent", mock.Anything, mock.Anything).Return(nil, tt.err)
			app := newTestApp(t, records)

			for _, path := range []string{"/api/v1/admin/audit-logs", "/api/v1/admin/audit-logs/facets"} {
				status, body := get(t, app, path, "super_admin")
				assert.Equal(t, tt.status, status, path)

				var errResp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.Equal(t, tt.msg, errResp.Error)
			}
		})
	}
}
