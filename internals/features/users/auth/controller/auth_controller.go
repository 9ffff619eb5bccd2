// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authdto "github.com/Harus-Bisa/backend/internals/features/users/auth/dto"
	authService "github.com/Harus-Bisa/backend/internals/features/users/auth/service"
	userdto "github.com/Harus-Bisa/backend/internals/features/users/user/dto"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB, jwtSecret string) *AuthController {
	return &AuthController{Service: authService.NewAuthService(db, jwtSecret)}
}

// POST /signup
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	var req authdto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	user, err := ctrl.Service.Signup(&req)
	if err != nil {
		if errors.Is(err, authService.ErrEmailAlreadyExists) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Create user is successful", userdto.ToUserResponse(user))
}

// POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	credential, err := ctrl.Service.Login(&req)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredential) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return helper.JsonOK(c, "Login is successful", credential)
}
