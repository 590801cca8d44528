package handler

import (
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomerByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := h.service.CreateCustomer(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := h.service.UpdateCustomer(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.service.DeleteCustomer(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
