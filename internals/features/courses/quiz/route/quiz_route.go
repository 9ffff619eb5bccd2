// file: internals/features/courses/quiz/route/quiz_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "github.com/Harus-Bisa/backend/internals/features/courses/quiz/controller"
	featuresMw "github.com/Harus-Bisa/backend/internals/middlewares/features"
)

// FacultyQuizRoutes mounts the instructor quiz endpoints under the faculty
// group. Quizzes are nested in their lecture and addressed by index.
func FacultyQuizRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewFacultyQuizController(db)

	quizzes := router.Group("/lectures/:lectureId/quizzes", featuresMw.LectureAccess(db))
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Get("/", ctrl.GetQuizzes)
	quizzes.Get("/:quizIndex", ctrl.GetQuiz)
	quizzes.Put("/:quizIndex", ctrl.UpdateQuiz)
	quizzes.Delete("/:quizIndex", ctrl.DeleteQuiz)
}

// StudentQuizRoutes mounts the student quiz endpoints under the student
// group.
func StudentQuizRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewStudentQuizController(db)

	quizzes := router.Group("/lectures/:lectureId/quizzes", featuresMw.LectureAccess(db))
	quizzes.Get("/", ctrl.GetQuizzes)
	quizzes.Get("/:quizIndex", ctrl.GetQuiz)
	quizzes.Post("/:quizIndex", ctrl.AnswerQuiz)
}
