package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opsdesk/backend/internal/audittrail"
	"github.com/opsdesk/backend/internal/http/dto"
	"github.com/opsdesk/backend/internal/models"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaAuditTaxonomy struct {
	Categories    []string `json:"categories"`
	SystemActions []string `json:"system_actions"`
}

func (h *MetaHandler) GetAuditCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: MetaAuditTaxonomy{
		Categories:    audittrail.Categories,
		SystemActions: models.SystemActions,
	}})
}
