// file: internals/features/courses/course/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursedto "github.com/Harus-Bisa/backend/internals/features/courses/course/dto"
	courseService "github.com/Harus-Bisa/backend/internals/features/courses/course/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// CourseController serves the public join-code lookup. No auth required.
type CourseController struct {
	Service *courseService.CourseService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Service: courseService.NewCourseService(db)}
}

// GET /courses/:joinCode
func (ctrl *CourseController) GetCourseByJoinCode(c *fiber.Ctx) error {
	course, err := ctrl.Service.GetCourseByJoinCode(c.Params("joinCode"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get course")
	}
	return helper.JsonOK(c, "Get course is successful", coursedto.ToFacultyCourseResponse(course))
}
