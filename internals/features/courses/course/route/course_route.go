// file: internals/features/courses/course/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "github.com/Harus-Bisa/backend/internals/features/courses/course/controller"
	featuresMw "github.com/Harus-Bisa/backend/internals/middlewares/features"
)

// PublicCourseRoutes mounts the unauthenticated join-code lookup.
func PublicCourseRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	router.Get("/courses/:joinCode", ctrl.GetCourseByJoinCode)
}

// FacultyCourseRoutes mounts the instructor course endpoints under the
// faculty group.
func FacultyCourseRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewFacultyCourseController(db)

	courses := router.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Get("/", ctrl.GetCourses)
	courses.Get("/:courseId", featuresMw.CourseAccess(db), ctrl.GetCourse)
	courses.Put("/:courseId", featuresMw.CourseAccess(db), ctrl.UpdateCourse)
	courses.Delete("/:courseId", featuresMw.CourseAccess(db), ctrl.DeleteCourse)
}

// StudentCourseRoutes mounts the student course endpoints under the student
// group.
func StudentCourseRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewStudentCourseController(db)

	courses := router.Group("/courses")
	courses.Post("/", ctrl.JoinCourse)
	courses.Get("/", ctrl.GetCourses)
	courses.Get("/:courseId", featuresMw.CourseAccess(db), ctrl.GetCourse)
	courses.Delete("/:courseId", featuresMw.CourseAccess(db), ctrl.LeaveCourse)
}
