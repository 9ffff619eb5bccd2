// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/Harus-Bisa/backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts the public signup and login endpoints.
func AuthRoutes(router fiber.Router, db *gorm.DB, jwtSecret string) {
	ctrl := authController.NewAuthController(db, jwtSecret)

	router.Post("/signup", ctrl.Signup)
	router.Post("/login", ctrl.Login)
}
