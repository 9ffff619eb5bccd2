// internals/middlewares/features/lecture_access.go
package features

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lectureModel "github.com/Harus-Bisa/backend/internals/features/courses/lecture/model"
	userModel "github.com/Harus-Bisa/backend/internals/features/users/user/model"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// LectureAccess checks that the authenticated user is enrolled in (or
// teaches) the course the lecture belongs to. A lecture that does not exist
// is passed through so the handler can answer with its own not-found
// response.
func LectureAccess(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lectureID := c.Params("lectureId")
		if _, err := uuid.Parse(lectureID); err != nil {
			return c.Next()
		}

		var lecture lectureModel.LectureModel
		if err := db.First(&lecture, "lecture_id = ?", lectureID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lecture")
			}
			return c.Next()
		}

		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}

		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User does not exist")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
		}

		if !user.HasCourse(lecture.LectureCourseID.String()) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		return c.Next()
	}
}
