// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userdto "github.com/Harus-Bisa/backend/internals/features/users/user/dto"
	userService "github.com/Harus-Bisa/backend/internals/features/users/user/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

type UserController struct {
	Service *userService.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: userService.NewUserService(db)}
}

// GET /users/:userId
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	user, err := ctrl.Service.GetUser(c.Params("userId"))
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user")
	}
	return helper.JsonOK(c, "Get user is successful", userdto.ToUserResponse(user))
}

// PUT /users/:userId
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var req userdto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	user, err := ctrl.Service.UpdateUser(c.Params("userId"), &req)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "Update user is successful", userdto.ToUserResponse(user))
}

// DELETE /users/:userId
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	user, err := ctrl.Service.DeleteUser(c.Params("userId"))
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "Delete user is successful", userdto.ToUserResponse(user))
}
