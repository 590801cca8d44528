package handler

import (
	"errors"
	"log"

	"go-retail-erp/internal/service"
	"go-retail-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors to the response status. Anything not listed
// here is a store failure and is hidden behind a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrDraftNotFound),
		errors.Is(err, service.ErrUnknownCatalogKind):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNoItems),
		errors.Is(err, service.ErrCustomerRequired),
		isValidationError(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("handler: %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

func isValidationError(err error) bool {
	var verr *validator.Error
	return errors.As(err, &verr)
}
