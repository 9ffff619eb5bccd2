// file: internals/features/courses/lecture/route/lecture_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lectureController "github.com/Harus-Bisa/backend/internals/features/courses/lecture/controller"
	featuresMw "github.com/Harus-Bisa/backend/internals/middlewares/features"
)

// FacultyLectureRoutes mounts the instructor lecture endpoints under the
// faculty group. Creation and listing live under the course path.
func FacultyLectureRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := lectureController.NewFacultyLectureController(db)

	router.Post("/courses/:courseId/lectures", featuresMw.CourseAccess(db), ctrl.CreateLecture)
	router.Get("/courses/:courseId/lectures", featuresMw.CourseAccess(db), ctrl.GetLectures)

	lectures := router.Group("/lectures", featuresMw.LectureAccess(db))
	lectures.Get("/:lectureId", ctrl.GetLecture)
	lectures.Put("/:lectureId", ctrl.UpdateLecture)
	lectures.Delete("/:lectureId", ctrl.DeleteLecture)
}

// StudentLectureRoutes mounts the student lecture endpoints under the
// student group, including attendance submission.
func StudentLectureRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := lectureController.NewStudentLectureController(db)

	router.Get("/courses/:courseId/lectures", featuresMw.CourseAccess(db), ctrl.GetLectures)

	lectures := router.Group("/lectures", featuresMw.LectureAccess(db))
	lectures.Get("/:lectureId", ctrl.GetLecture)
	lectures.Post("/:lectureId", ctrl.AttendLecture)
}
