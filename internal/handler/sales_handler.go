package handler

import (
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sales)
}

func (h *SalesHandler) GetSale(c *fiber.Ctx) error {
	sale, err := h.service.GetSaleByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// RecordSale posts a complete sale in one request.
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var req service.RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.RecordSale(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

func (h *SalesHandler) OpenDraft(c *fiber.Ctx) error {
	var req service.DraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
	}

	draft, err := h.service.OpenDraft(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(draft)
}

func (h *SalesHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.service.GetDraft(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(draft)
}

func (h *SalesHandler) UpdateDraft(c *fiber.Ctx) error {
	var req service.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	draft, err := h.service.UpdateDraft(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(draft)
}

func (h *SalesHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.service.DiscardDraft(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Draft discarded"})
}

func (h *SalesHandler) AddItem(c *fiber.Ctx) error {
	var req service.SaleItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	draft, err := h.service.AddItem(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(draft)
}

func (h *SalesHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item index"})
	}

	draft, err := h.service.RemoveItem(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(draft)
}

func (h *SalesHandler) PostDraft(c *fiber.Ctx) error {
	sale, err := h.service.PostDraft(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}
