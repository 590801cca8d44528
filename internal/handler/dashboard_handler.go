package handler

import (
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}

// VerifyTotals lists sales whose stored total does not match their items.
func (h *DashboardHandler) VerifyTotals(c *fiber.Ctx) error {
	ids, err := h.service.VerifyTotals(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify sale totals"})
	}

	return c.JSON(fiber.Map{
		"consistent": len(ids) == 0,
		"mismatched": ids,
	})
}
