// file: internals/features/courses/lecture/service/lecture_service.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseService "github.com/Harus-Bisa/backend/internals/features/courses/course/service"
	lecturedto "github.com/Harus-Bisa/backend/internals/features/courses/lecture/dto"
	lectureModel "github.com/Harus-Bisa/backend/internals/features/courses/lecture/model"
)

var (
	ErrCourseNotFound  = courseService.ErrCourseNotFound
	ErrLectureNotFound = errors.New("Specified lecture not found")
)

type LectureService struct {
	DB      *gorm.DB
	Courses *courseService.CourseService
}

func NewLectureService(db *gorm.DB) *LectureService {
	return &LectureService{DB: db, Courses: courseService.NewCourseService(db)}
}

// CreateLecture resolves the parent course first, creates the lecture in its
// initial state, and mirrors the lecture id onto the course's lecture list.
func (s *LectureService) CreateLecture(courseID string, req *lecturedto.CreateLectureRequest) (*lectureModel.LectureModel, error) {
	course, err := s.Courses.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	lecture := lectureModel.LectureModel{
		LectureID:                            uuid.New(),
		LectureCourseID:                      course.CourseID,
		LectureDate:                          *req.Date,
		LectureParticipationRewardPercentage: *req.ParticipationRewardPercentage,
		LectureLive:                          false,
		LectureHasLived:                      false,
		LectureStudentsAttendance:            datatypes.JSONSlice[string]{},
		LectureQuizzes:                       datatypes.JSONSlice[lectureModel.QuizItem]{},
	}
	if req.Description != nil {
		lecture.LectureDescription = *req.Description
	}

	if err := s.DB.Create(&lecture).Error; err != nil {
		return nil, err
	}

	if err := s.Courses.AddLecture(courseID, lecture.LectureID.String()); err != nil {
		log.Println("[ERROR] Failed to mirror lecture onto course:", err)
	}
	return &lecture, nil
}

// GetLecture resolves a lecture id. A malformed id behaves like a missing one.
func (s *LectureService) GetLecture(lectureID string) (*lectureModel.LectureModel, error) {
	if _, err := uuid.Parse(lectureID); err != nil {
		return nil, ErrLectureNotFound
	}
	var lecture lectureModel.LectureModel
	if err := s.DB.First(&lecture, "lecture_id = ?", lectureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLectureNotFound
		}
		return nil, err
	}
	return &lecture, nil
}

// GetLectures returns every lecture on the course's lecture list, skipping
// dangling references.
func (s *LectureService) GetLectures(courseID string) ([]lectureModel.LectureModel, error) {
	course, err := s.Courses.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	lectures := make([]lectureModel.LectureModel, 0, len(course.CourseLecturesID))
	for _, lectureID := range course.CourseLecturesID {
		lecture, err := s.GetLecture(lectureID)
		if err != nil {
			if errors.Is(err, ErrLectureNotFound) {
				continue
			}
			return nil, err
		}
		lectures = append(lectures, *lecture)
	}
	return lectures, nil
}

// StudentLectures filters the course's lectures down to those that have ever
// gone live. Lectures that never went live are invisible to students.
func (s *LectureService) StudentLectures(courseID string) ([]lectureModel.LectureModel, error) {
	lectures, err := s.GetLectures(courseID)
	if err != nil {
		return nil, err
	}

	hasLived := make([]lectureModel.LectureModel, 0, len(lectures))
	for _, lecture := range lectures {
		if lecture.LectureHasLived {
			hasLived = append(hasLived, lecture)
		}
	}
	return hasLived, nil
}

// StudentLecture resolves a lecture for a student; a lecture that has never
// gone live is treated as nonexistent.
func (s *LectureService) StudentLecture(lectureID string) (*lectureModel.LectureModel, error) {
	lecture, err := s.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.LectureHasLived {
		return nil, ErrLectureNotFound
	}
	return lecture, nil
}

// UpdateLecture applies the allow-listed fields. Setting live=true latches
// hasLived; nothing ever unsets it.
func (s *LectureService) UpdateLecture(lectureID string, req *lecturedto.UpdateLectureRequest) (*lectureModel.LectureModel, error) {
	lecture, err := s.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		updates["lecture_date"] = *req.Date
	}
	if req.Description != nil {
		updates["lecture_description"] = *req.Description
	}
	if req.ParticipationRewardPercentage != nil {
		updates["lecture_participation_reward_percentage"] = *req.ParticipationRewardPercentage
	}
	if req.Live != nil {
		updates["lecture_live"] = *req.Live
		if *req.Live {
			updates["lecture_has_lived"] = true
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(lecture).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetLecture(lectureID)
}

// DeleteLecture removes the lecture and pulls its id from the parent course.
func (s *LectureService) DeleteLecture(lectureID string) (*lectureModel.LectureModel, error) {
	lecture, err := s.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Delete(lecture).Error; err != nil {
		return nil, err
	}
	if err := s.Courses.RemoveLecture(lecture.LectureCourseID.String(), lectureID); err != nil {
		log.Println("[ERROR] Failed to pull lecture from course:", err)
	}
	return lecture, nil
}

// AttendLecture records the student's attendance. The lecture must be live
// right now; hasLived alone is not enough.
func (s *LectureService) AttendLecture(lectureID, studentID string) (*lectureModel.LectureModel, error) {
	lecture, err := s.GetLecture(lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.LectureLive {
		return nil, ErrLectureNotFound
	}

	lecture.AddAttendance(studentID)
	if err := s.DB.Model(lecture).Update("lecture_students_attendance", lecture.LectureStudentsAttendance).Error; err != nil {
		return nil, err
	}
	return lecture, nil
}
