// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/Harus-Bisa/backend/internals/features/users/user/controller"
	featuresMw "github.com/Harus-Bisa/backend/internals/middlewares/features"
)

// UserRoutes mounts the account endpoints. A user may only touch their own
// record; the access check compares the path id to the token.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/:userId", featuresMw.UserAccess(), ctrl.GetUser)
	router.Put("/:userId", featuresMw.UserAccess(), ctrl.UpdateUser)
	router.Delete("/:userId", featuresMw.UserAccess(), ctrl.DeleteUser)
}
