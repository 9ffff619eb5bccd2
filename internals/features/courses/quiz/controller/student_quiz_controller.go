// file: internals/features/courses/quiz/controller/student_quiz_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizdto "github.com/Harus-Bisa/backend/internals/features/courses/quiz/dto"
	quizService "github.com/Harus-Bisa/backend/internals/features/courses/quiz/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// StudentQuizController serves the student-facing quiz endpoints: reading
// quizzes of a lecture that has gone live and answering while it is live.
type StudentQuizController struct {
	Service *quizService.QuizService
}

func NewStudentQuizController(db *gorm.DB) *StudentQuizController {
	return &StudentQuizController{Service: quizService.NewQuizService(db)}
}

func (ctrl *StudentQuizController) quizError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, quizService.ErrLectureNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Specified lecture not found")
	case errors.Is(err, quizService.ErrQuizIndexNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

// POST /student/lectures/:lectureId/quizzes/:quizIndex
func (ctrl *StudentQuizController) AnswerQuiz(c *fiber.Ctx) error {
	index, err := parseQuizIndex(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	}

	var req quizdto.AnswerQuizRequest
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

	quiz, err := ctrl.Service.AnswerQuiz(c.Params("lectureId"), index, studentID.String(), *req.StudentAnswerIndex)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to answer quiz")
	}
	return helper.JsonOK(c, "Answer quiz is successful", quizdto.ToStudentQuizResponse(quiz, index, studentID.String()))
}

// GET /student/lectures/:lectureId/quizzes
func (ctrl *StudentQuizController) GetQuizzes(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	quizzes, err := ctrl.Service.StudentQuizzes(c.Params("lectureId"))
	if err != nil {
		return ctrl.quizError(c, err, "Failed to get quizzes")
	}

	resp := make([]quizdto.StudentQuizResponse, 0, len(quizzes))
	for i := range quizzes {
		resp = append(resp, quizdto.ToStudentQuizResponse(&quizzes[i], i, studentID.String()))
	}
	return helper.JsonOK(c, "Get quizzes is successful", resp)
}

// GET /student/lectures/:lectureId/quizzes/:quizIndex
func (ctrl *StudentQuizController) GetQuiz(c *fiber.Ctx) error {
	index, err := parseQuizIndex(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Specified quizIndex not found")
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	quiz, err := ctrl.Service.StudentQuiz(c.Params("lectureId"), index)
	if err != nil {
		return ctrl.quizError(c, err, "Failed to get quiz")
	}
	return helper.JsonOK(c, "Get quiz is successful", quizdto.ToStudentQuizResponse(quiz, index, studentID.String()))
}
