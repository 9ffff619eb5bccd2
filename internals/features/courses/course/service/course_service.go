// file: internals/features/courses/course/service/course_service.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coursedto "github.com/Harus-Bisa/backend/internals/features/courses/course/dto"
	courseModel "github.com/Harus-Bisa/backend/internals/features/courses/course/model"
	userService "github.com/Harus-Bisa/backend/internals/features/users/user/service"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

var ErrCourseNotFound = errors.New("Course not found")

type CourseService struct {
	DB    *gorm.DB
	Users *userService.UserService
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db, Users: userService.NewUserService(db)}
}

// CreateCourse builds the course with a fresh unique join code, records the
// creator as its instructor, and mirrors the course id onto the creator's
// course list.
func (s *CourseService) CreateCourse(facultyID string, req *coursedto.CreateCourseRequest) (*courseModel.CourseModel, error) {
	instructor, err := s.Users.GetUser(facultyID)
	if err != nil {
		return nil, err
	}

	joinCode, err := helper.EnsureUniqueJoinCode(s.DB)
	if err != nil {
		return nil, err
	}

	course := courseModel.CourseModel{
		CourseID:            uuid.New(),
		CourseName:          *req.CourseName,
		CourseStartTerm:     *req.StartTerm,
		CourseEndTerm:       *req.EndTerm,
		CourseJoinCode:      joinCode,
		CourseInstructors:   datatypes.JSONSlice[string]{instructor.FirstName + " " + instructor.LastName},
		CourseInstructorsID: datatypes.JSONSlice[string]{facultyID},
		CourseStudentsID:    datatypes.JSONSlice[string]{},
		CourseLecturesID:    datatypes.JSONSlice[string]{},
	}
	if req.CourseDescription != nil {
		course.CourseDescription = *req.CourseDescription
	}

	if err := s.DB.Create(&course).Error; err != nil {
		return nil, err
	}

	if err := s.Users.AddCourse(facultyID, course.CourseID.String()); err != nil {
		log.Println("[ERROR] Failed to mirror course onto user:", err)
	}
	return &course, nil
}

// GetCourse resolves a course id. A malformed id behaves like a missing one.
func (s *CourseService) GetCourse(courseID string) (*courseModel.CourseModel, error) {
	if _, err := uuid.Parse(courseID); err != nil {
		return nil, ErrCourseNotFound
	}
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) GetCourseByJoinCode(joinCode string) (*courseModel.CourseModel, error) {
	var course courseModel.CourseModel
	if err := s.DB.First(&course, "course_join_code = ?", joinCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// GetCoursesForUser resolves every id on the user's course list, skipping
// dangling references.
func (s *CourseService) GetCoursesForUser(userID string) ([]courseModel.CourseModel, error) {
	coursesID, err := s.Users.GetCoursesID(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]courseModel.CourseModel, 0, len(coursesID))
	for _, courseID := range coursesID {
		course, err := s.GetCourse(courseID)
		if err != nil {
			if errors.Is(err, ErrCourseNotFound) {
				continue
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// UpdateCourse applies the allow-listed fields only. The join code and the
// membership lists are never client-writable.
func (s *CourseService) UpdateCourse(courseID string, req *coursedto.UpdateCourseRequest) (*courseModel.CourseModel, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.CourseName != nil {
		updates["course_name"] = *req.CourseName
	}
	if req.StartTerm != nil {
		updates["course_start_term"] = *req.StartTerm
	}
	if req.EndTerm != nil {
		updates["course_end_term"] = *req.EndTerm
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}

	if len(updates) > 0 {
		if err := s.DB.Model(course).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetCourse(courseID)
}

// DeleteCourse removes the course and pulls its id from the owner's and
// every enrolled student's course list.
func (s *CourseService) DeleteCourse(facultyID, courseID string) (*courseModel.CourseModel, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	if err := s.Users.RemoveCourse(facultyID, courseID); err != nil {
		log.Println("[ERROR] Failed to pull course from owner:", err)
	}
	for _, studentID := range course.CourseStudentsID {
		if err := s.Users.RemoveCourse(studentID, courseID); err != nil {
			log.Println("[ERROR] Failed to pull course from student:", err)
		}
	}

	if err := s.DB.Delete(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// JoinCourse enrolls the student via join code (idempotent on re-join).
func (s *CourseService) JoinCourse(studentID, joinCode string) (*courseModel.CourseModel, error) {
	course, err := s.GetCourseByJoinCode(joinCode)
	if err != nil {
		return nil, err
	}

	course.AddStudent(studentID)
	if err := s.DB.Model(course).Update("course_students_id", course.CourseStudentsID).Error; err != nil {
		return nil, err
	}
	if err := s.Users.AddCourse(studentID, course.CourseID.String()); err != nil {
		return nil, err
	}
	return course, nil
}

// LeaveCourse unenrolls the student from the course on both sides.
func (s *CourseService) LeaveCourse(studentID, courseID string) (*courseModel.CourseModel, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	if err := s.Users.RemoveCourse(studentID, courseID); err != nil {
		return nil, err
	}
	course.RemoveStudent(studentID)
	if err := s.DB.Model(course).Update("course_students_id", course.CourseStudentsID).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// AddLecture mirrors a lecture id onto the course's lecture list.
func (s *CourseService) AddLecture(courseID, lectureID string) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	course.AddLecture(lectureID)
	return s.DB.Model(course).Update("course_lectures_id", course.CourseLecturesID).Error
}

// RemoveLecture pulls a lecture id from the course's lecture list.
func (s *CourseService) RemoveLecture(courseID, lectureID string) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	course.RemoveLecture(lectureID)
	return s.DB.Model(course).Update("course_lectures_id", course.CourseLecturesID).Error
}
