package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ParseAndValidateBody parses the request body into dto and runs tag-based
// validation on it. Returns a 400 fiber.Error on parse or validation failure.
func ParseAndValidateBody(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	errors := NewValidator().Validate(dto)
	if errors.HasErrors() {
		return fiber.NewError(fiber.StatusBadRequest, errors.Error())
	}

	return nil
}
