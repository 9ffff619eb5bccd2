// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Harus-Bisa/backend/internals/constants"
	courseRoute "github.com/Harus-Bisa/backend/internals/features/courses/course/route"
	lectureRoute "github.com/Harus-Bisa/backend/internals/features/courses/lecture/route"
	quizRoute "github.com/Harus-Bisa/backend/internals/features/courses/quiz/route"
	authRoute "github.com/Harus-Bisa/backend/internals/features/users/auth/route"
	userRoute "github.com/Harus-Bisa/backend/internals/features/users/user/route"
	authMw "github.com/Harus-Bisa/backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole HTTP surface. Signup, login, and the course
// join-code lookup are public; everything else is bearer-token authenticated
// and split into role-gated faculty and student groups.
func SetupRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	authRoute.AuthRoutes(app, db, jwtSecret)
	courseRoute.PublicCourseRoutes(app, db)

	// ===================== USERS =====================
	log.Println("[INFO] Setting up user routes...")
	users := app.Group("/users", authMw.AuthMiddleware(jwtSecret))
	userRoute.UserRoutes(users, db)

	// ===================== FACULTY =====================
	log.Println("[INFO] Setting up faculty routes...")
	faculty := app.Group("/faculty",
		authMw.AuthMiddleware(jwtSecret),
		authMw.OnlyRoles(constants.ErrOnlyFacultyCanAccess, constants.RoleFaculty),
	)
	courseRoute.FacultyCourseRoutes(faculty, db)
	lectureRoute.FacultyLectureRoutes(faculty, db)
	quizRoute.FacultyQuizRoutes(faculty, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up student routes...")
	student := app.Group("/student",
		authMw.AuthMiddleware(jwtSecret),
		authMw.OnlyRoles(constants.ErrOnlyStudentCanAccess, constants.RoleStudent),
	)
	courseRoute.StudentCourseRoutes(student, db)
	lectureRoute.StudentLectureRoutes(student, db)
	quizRoute.StudentQuizRoutes(student, db)
}
