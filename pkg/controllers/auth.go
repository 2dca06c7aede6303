package controller

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
	request "github.com/sorumat/sorumat-go/pkg/types/dtos/requests"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// Signup handles POST /auth/signup by delegating to the identity provider.
func Signup(identity _interface.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req request.Signup
		if err := utils.ParseAndValidateBody(c, &req); err != nil {
			return err
		}

		session, status, err := identity.Signup(req.Email, req.Password)
		if err != nil {
			return c.Status(status).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(status).JSON(session)
	}
}

// Signin handles POST /auth/signin by delegating to the identity provider.
func Signin(identity _interface.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req request.Signin
		if err := utils.ParseAndValidateBody(c, &req); err != nil {
			return err
		}

		session, status, err := identity.Signin(req.Email, req.Password)
		if err != nil {
			return c.Status(status).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(status).JSON(session)
	}
}
