// file: internals/features/courses/course/controller/faculty_course_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursedto "github.com/Harus-Bisa/backend/internals/features/courses/course/dto"
	courseService "github.com/Harus-Bisa/backend/internals/features/courses/course/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// FacultyCourseController serves the instructor-facing course endpoints.
// Faculty get full course projections and may not join by code.
type FacultyCourseController struct {
	Service *courseService.CourseService
}

func NewFacultyCourseController(db *gorm.DB) *FacultyCourseController {
	return &FacultyCourseController{Service: courseService.NewCourseService(db)}
}

// POST /faculty/courses
func (ctrl *FacultyCourseController) CreateCourse(c *fiber.Ctx) error {
	var req coursedto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	course, err := ctrl.Service.CreateCourse(facultyID.String(), &req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Create course is successful", coursedto.ToFacultyCourseResponse(course))
}

// GET /faculty/courses
func (ctrl *FacultyCourseController) GetCourses(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	courses, err := ctrl.Service.GetCoursesForUser(facultyID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get courses")
	}

	resp := make([]coursedto.FacultyCourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, coursedto.ToFacultyCourseResponse(&courses[i]))
	}
	return helper.JsonOK(c, "Get faculty's courses is successful", resp)
}

// GET /faculty/courses/:courseId
func (ctrl *FacultyCourseController) GetCourse(c *fiber.Ctx) error {
	course, err := ctrl.Service.GetCourse(c.Params("courseId"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course is not in the faculty's course list")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get course")
	}
	return helper.JsonOK(c, "Get course is successful", coursedto.ToFacultyCourseResponse(course))
}

// PUT /faculty/courses/:courseId
func (ctrl *FacultyCourseController) UpdateCourse(c *fiber.Ctx) error {
	var req coursedto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}

	course, err := ctrl.Service.UpdateCourse(c.Params("courseId"), &req)
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Update course is successful", coursedto.ToFacultyCourseResponse(course))
}

// DELETE /faculty/courses/:courseId
func (ctrl *FacultyCourseController) DeleteCourse(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	course, err := ctrl.Service.DeleteCourse(facultyID.String(), c.Params("courseId"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Delete course is successful", coursedto.ToFacultyCourseResponse(course))
}
