package handler

import (
	"go-retail-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists products in stored order.
// Query params: in_stock=true keeps only products with stock on hand
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext(), c.QueryBool("in_stock", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
