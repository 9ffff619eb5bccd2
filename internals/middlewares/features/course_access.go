// internals/middlewares/features/course_access.go
package features

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Harus-Bisa/backend/internals/constants"
	courseModel "github.com/Harus-Bisa/backend/internals/features/courses/course/model"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// CourseAccess checks that the authenticated user belongs to the course in
// the path. A course that does not exist is passed through so the handler
// can answer with its own not-found response.
func CourseAccess(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Params("courseId")
		if _, err := uuid.Parse(courseID); err != nil {
			return c.Next()
		}

		var course courseModel.CourseModel
		if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
			}
			return c.Next()
		}

		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		role, _ := helper.GetUserRoleFromToken(c)

		allowed := false
		switch role {
		case constants.RoleFaculty:
			allowed = course.HasInstructor(userID.String())
		case constants.RoleStudent:
			allowed = course.HasStudent(userID.String())
		}
		if !allowed {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		return c.Next()
	}
}
