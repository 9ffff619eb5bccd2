package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validates the role and returns a custom message
func RoleMiddlewareWithCustomError(allowedRoles []string, customMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customMessage == "" {
			customMessage = "You are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, customMessage)
	}
}

// OnlyRoles is a shorthand for cleaner route files
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
