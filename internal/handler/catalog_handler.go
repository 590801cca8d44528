package handler

import (
	"net/url"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

type catalogValueRequest struct {
	Value string `json:"value"`
}

func (h *CatalogHandler) GetCatalogs(c *fiber.Ctx) error {
	all, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(all)
}

// GetCatalog lists one registry. kind is type, supplier or platform.
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	values, err := h.service.List(c.UserContext(), model.CatalogKind(c.Params("kind")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(values)
}

func (h *CatalogHandler) AddValue(c *fiber.Ctx) error {
	var req catalogValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	values, err := h.service.Add(c.UserContext(), model.CatalogKind(c.Params("kind")), req.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(values)
}

func (h *CatalogHandler) RemoveValue(c *fiber.Ctx) error {
	value, err := url.PathUnescape(c.Params("value"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid catalog value"})
	}

	values, err := h.service.Remove(c.UserContext(), model.CatalogKind(c.Params("kind")), value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(values)
}
