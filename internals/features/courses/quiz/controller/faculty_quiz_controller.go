// file: internals/features/courses/quiz/controller/faculty_quiz_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizdto "github.com/Harus-Bisa/backend/internals/features/courses/quiz/dto"
	quizService "github.com/Harus-Bisa/backend/internals/features/courses/quiz/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// FacultyQuizController serves the instructor-facing quiz endpoints.
// Quizzes are addressed by position within their lecture.
type FacultyQuizController struct {
	Service *quizService.QuizService
}

func NewFacultyQuizController(db *gorm.DB) *FacultyQuizController {
	return &FacultyQuizController{Service: quizService.NewQuizService(db)}
}

func parseQuizIndex(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("quizIndex"))
}

func (ctrl *FacultyQuizController) quizError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, quizService.ErrLectureNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Specified lecture not found")
	case errors.Is(err, quizService.ErrQuizIndexNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

// POST /faculty/lectures/:lectureId/quizzes
func (ctrl *FacultyQuizController) CreateQuiz(c *fiber.Ctx) error {
	var req quizdto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}
	if field, invalid := helper.FirstInvalidField(&req); invalid {
		return helper.JsonError(c, fiber.StatusInternalServerError, field+" is not provided")
	}

	quiz, index, err := ctrl.Service.CreateQuiz(c.Params("lectureId"), &req)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to create quiz")
	}
	return helper.JsonCreated(c, "Create quiz is successful", quizdto.ToFacultyQuizResponse(quiz, index))
}

// GET /faculty/lectures/:lectureId/quizzes
func (ctrl *FacultyQuizController) GetQuizzes(c *fiber.Ctx) error {
	quizzes, err := ctrl.Service.GetQuizzes(c.Params("lectureId"))
	if err != nil {
		return ctrl.quizError(c, err, "Failed to get quizzes")
	}

	resp := make([]quizdto.FacultyQuizResponse, 0, len(quizzes))
	for i := range quizzes {
		resp = append(resp, quizdto.ToFacultyQuizResponse(&quizzes[i], i))
	}
	return helper.JsonOK(c, "Get quizzes is successful", resp)
}

// GET /faculty/lectures/:lectureId/quizzes/:quizIndex
func (ctrl *FacultyQuizController) GetQuiz(c *fiber.Ctx) error {
	index, err := parseQuizIndex(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	}

	quiz, err := ctrl.Service.GetQuiz(c.Params("lectureId"), index)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to get quiz")
	}
	return helper.JsonOK(c, "Get quiz is successful", quizdto.ToFacultyQuizResponse(quiz, index))
}

// PUT /faculty/lectures/:lectureId/quizzes/:quizIndex
func (ctrl *FacultyQuizController) UpdateQuiz(c *fiber.Ctx) error {
	index, err := parseQuizIndex(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	}

	var req quizdto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid request body")
	}

	quiz, err := ctrl.Service.UpdateQuiz(c.Params("lectureId"), index, &req)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to update quiz")
	}
	return helper.JsonUpdated(c, "Update quiz is successful", quizdto.ToFacultyQuizResponse(quiz, index))
}

// DELETE /faculty/lectures/:lectureId/quizzes/:quizIndex
func (ctrl *FacultyQuizController) DeleteQuiz(c *fiber.Ctx) error {
	index, err := parseQuizIndex(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	}

	quiz, err := ctrl.Service.DeleteQuiz(c.Params("lectureId"), index)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to delete quiz")
	}
	return helper.JsonDeleted(c, "Delete quiz is successful", quizdto.ToFacultyQuizResponse(quiz, index))
}
