package handler

import (
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BackupHandler struct {
	service service.BackupService
}

func NewBackupHandler(s service.BackupService) *BackupHandler {
	return &BackupHandler{service: s}
}

// Export downloads every stored document as erp-backup.json.
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, err := h.service.ExportJSON(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(service.BackupFileName)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// ClearAll wipes the store. Mounted behind middleware.RequireConfirm.
func (h *BackupHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.service.ClearAll(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All data cleared"})
}
