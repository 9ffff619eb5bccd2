// file: internals/features/courses/lecture/controller/faculty_lecture_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lecturedto "github.com/Harus-Bisa/backend/internals/features/courses/lecture/dto"
	lectureService "github.com/Harus-Bisa/backend/internals/features/courses/lecture/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// FacultyLectureController serves the instructor-facing lecture endpoints,
// including the live toggle.
type FacultyLectureController struct {
	Service *lectureService.LectureService
}

func NewFacultyLectureController(db *gorm.DB) *FacultyLectureController {
	return &FacultyLectureController{Service: lectureService.NewLectureService(db)}
}

// POST /faculty/courses/:courseId/lectures
func (ctrl *FacultyLectureController) CreateLecture(c *fiber.Ctx) error {
	var req lecturedto.CreateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	lecture, err := ctrl.Service.CreateLecture(c.Params("courseId"), &req)
	if err != nil {
		if errors.Is(err, lectureService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Specified course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lecture")
	}
	return helper.JsonCreated(c, "Create lecture is successful", lecturedto.ToFacultyLectureResponse(lecture))
}

// GET /faculty/courses/:courseId/lectures
func (ctrl *FacultyLectureController) GetLectures(c *fiber.Ctx) error {
	lectures, err := ctrl.Service.GetLectures(c.Params("courseId"))
	if err != nil {
		if errors.Is(err, lectureService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Specified course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get lectures")
	}

	resp := make([]lecturedto.FacultyLectureResponse, 0, len(lectures))
	for i := range lectures {
		resp = append(resp, lecturedto.ToFacultyLectureResponse(&lectures[i]))
	}
	return helper.JsonOK(c, "Get faculty's lectures is successful", resp)
}

// GET /faculty/lectures/:lectureId
func (ctrl *FacultyLectureController) GetLecture(c *fiber.Ctx) error {
	lecture, err := ctrl.Service.GetLecture(c.Params("lectureId"))
	if err != nil {
		if errors.Is(err, lectureService.ErrLectureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Specified lecture is not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get lecture")
	}
	return helper.JsonOK(c, "Get lecture is successful", lecturedto.ToFacultyLectureResponse(lecture))
}

// PUT /faculty/lectures/:lectureId
func (ctrl *FacultyLectureController) UpdateLecture(c *fiber.Ctx) error {
	var req lecturedto.UpdateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}

	lecture, err := ctrl.Service.UpdateLecture(c.Params("lectureId"), &req)
	if err != nil {
		if errors.Is(err, lectureService.ErrLectureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lecture")
	}
	return helper.JsonUpdated(c, "Update lecture is successful", lecturedto.ToFacultyLectureResponse(lecture))
}

// DELETE /faculty/lectures/:lectureId
func (ctrl *FacultyLectureController) DeleteLecture(c *fiber.Ctx) error {
	lecture, err := ctrl.Service.DeleteLecture(c.Params("lectureId"))
	if err != nil {
		if errors.Is(err, lectureService.ErrLectureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lecture")
	}
	return helper.JsonDeleted(c, "Delete lecture is successful", lecturedto.ToFacultyLectureResponse(lecture))
}
