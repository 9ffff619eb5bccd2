// file: internals/features/courses/course/controller/student_course_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursedto "github.com/Harus-Bisa/backend/internals/features/courses/course/dto"
	courseService "github.com/Harus-Bisa/backend/internals/features/courses/course/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// StudentCourseController serves the student-facing course endpoints.
// Students enroll by join code and never see the enrollment count.
type StudentCourseController struct {
	Service *courseService.CourseService
}

func NewStudentCourseController(db *gorm.DB) *StudentCourseController {
	return &StudentCourseController{Service: courseService.NewCourseService(db)}
}

// POST /student/courses
func (ctrl *StudentCourseController) JoinCourse(c *fiber.Ctx) error {
	var req coursedto.JoinCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	course, err := ctrl.Service.JoinCourse(studentID.String(), *req.JoinCode)
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to join course")
	}
	return helper.JsonOK(c, "Add course is successful", coursedto.ToStudentCourseResponse(course))
}

// GET /student/courses
func (ctrl *StudentCourseController) GetCourses(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	courses, err := ctrl.Service.GetCoursesForUser(studentID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get courses")
	}

	resp := make([]coursedto.StudentCourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, coursedto.ToStudentCourseResponse(&courses[i]))
	}
	return helper.JsonOK(c, "Get student's courses is successful", resp)
}

// GET /student/courses/:courseId
func (ctrl *StudentCourseController) GetCourse(c *fiber.Ctx) error {
	course, err := ctrl.Service.GetCourse(c.Params("courseId"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course is not in the student's course list")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get course")
	}
	return helper.JsonOK(c, "Get course is successful", coursedto.ToStudentCourseResponse(course))
}

// DELETE /student/courses/:courseId
func (ctrl *StudentCourseController) LeaveCourse(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	course, err := ctrl.Service.LeaveCourse(studentID.String(), c.Params("courseId"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to leave course")
	}
	return helper.JsonDeleted(c, "Remove course is successful", coursedto.ToStudentCourseResponse(course))
}
