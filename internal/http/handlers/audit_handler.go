package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/opsdesk/backend/internal/audittrail"
	"github.com/opsdesk/backend/internal/http/dto"
	"github.com/opsdesk/backend/internal/middleware"
	"github.com/opsdesk/backend/internal/models"
	"github.com/opsdesk/backend/internal/rbac"
	"github.com/opsdesk/backend/internal/services"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditService *services.AuditService
	log          *zap.Logger
}

func NewAuditHandler(auditService *services.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{auditService: auditService, log: log}
}

func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	var q dto.AuditLogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid query", RequestID: middleware.GetRequestID(c)})
	}
	filter, err := toFilter(q)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), RequestID: middleware.GetRequestID(c)})
	}

	list, err := h.auditService.List(c.UserContext(), filter)
	if err != nil {
		return h.fetchError(c, err)
	}

	if !rbac.HasPermission(middleware.GetRole(c), rbac.PermViewAuditPayload) {
		for i := range list.Entries {
			list.Entries[i].BeforeState = models.Payload{}
			list.Entries[i].AfterState = models.Payload{}
		}
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: list})
}

func (h *AuditHandler) GetFacets(c *fiber.Ctx) error {
	facets, err := h.auditService.Facets(c.UserContext())
	if err != nil {
		return h.fetchError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: facets})
}

func (h *AuditHandler) fetchError(c *fiber.Ctx, err error) error {
	reqID := middleware.GetRequestID(c)
	switch {
	case errors.Is(err, services.ErrAuditTableNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "audit log table not found", RequestID: reqID})
	case errors.Is(err, services.ErrAuditPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "permission denied reading audit logs", RequestID: reqID})
	default:
		h.log.Error("load audit logs failed", zap.String("request_id", reqID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to load audit logs", RequestID: reqID})
	}
}

func toFilter(q dto.AuditLogQuery) (audittrail.Filter, error) {
	f := audittrail.Filter{
		Search:     q.Search,
		Action:     q.Action,
		Category:   q.Category,
		EntityType: q.EntityType,
		Department: q.Department,
		UserID:     q.UserID,
	}
	if q.From != "" {
		from, _, err := parseDate(q.From)
		if err != nil {
			return f, errors.New("invalid from date")
		}
		f.From = &from
	}
	if q.To != "" {
		to, dateOnly, err := parseDate(q.To)
		if err != nil {
			return f, errors.New("invalid to date")
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, errors.New("to must not be before from")
	}
	return f, nil
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	return t, true, err
}
