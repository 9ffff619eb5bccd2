// internals/middlewares/features/user_access.go
package features

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// UserAccess allows a user to touch only their own account.
func UserAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		if c.Params("userId") != userID.String() {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		return c.Next()
	}
}
