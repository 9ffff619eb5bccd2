// file: internals/features/courses/lecture/controller/student_lecture_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lecturedto "github.com/Harus-Bisa/backend/internals/features/courses/lecture/dto"
	lectureService "github.com/Harus-Bisa/backend/internals/features/courses/lecture/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// StudentLectureController serves the student-facing lecture endpoints.
// Students only see lectures that have gone live at least once.
type StudentLectureController struct {
	Service *lectureService.LectureService
}

func NewStudentLectureController(db *gorm.DB) *StudentLectureController {
	return &StudentLectureController{Service: lectureService.NewLectureService(db)}
}

// GET /student/courses/:courseId/lectures
func (ctrl *StudentLectureController) GetLectures(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	lectures, err := ctrl.Service.StudentLectures(c.Params("courseId"))
	if err != nil {
		if errors.Is(err, lectureService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Specified course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get lectures")
	}

	resp := make([]lecturedto.StudentLectureResponse, 0, len(lectures))
	for i := range lectures {
		resp = append(resp, lecturedto.ToStudentLectureResponse(&lectures[i], studentID.String()))
	}
	return helper.JsonOK(c, "Get student's lectures is successful", resp)
}

// GET /student/lectures/:lectureId
func (ctrl *StudentLectureController) GetLecture(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	lecture, err := ctrl.Service.StudentLecture(c.Params("lectureId"))
	if err != nil {
		if errors.Is(err, lectureService.ErrLectureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Specified lecture is not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get lecture")
	}
	return helper.JsonOK(c, "Get lecture is successful", lecturedto.ToStudentLectureResponse(lecture, studentID.String()))
}

// POST /student/lectures/:lectureId
func (ctrl *StudentLectureController) AttendLecture(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	lecture, err := ctrl.Service.AttendLecture(c.Params("lectureId"), studentID.String())
	if err != nil {
		if errors.Is(err, lectureService.ErrLectureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to attend lecture")
	}
	return helper.JsonOK(c, "Attend lecture is successful", lecturedto.ToStudentLectureResponse(lecture, studentID.String()))
}
