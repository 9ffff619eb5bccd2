// file: internals/features/courses/lecture/dto/lecture_dto.go
package dto

import (
	m "github.com/Harus-Bisa/backend/internals/features/courses/lecture/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateLectureRequest struct {
	Date                          *int64   `json:"date" validate:"required"`
	ParticipationRewardPercentage *float64 `json:"participationRewardPercentage" validate:"required"`
	Description                   *string  `json:"description" validate:"omitempty"`
}

// Update (partial JSON). Setting live=true latches hasLived in the service.
type UpdateLectureRequest struct {
	Date                          *int64   `json:"date" validate:"omitempty"`
	Description                   *string  `json:"description" validate:"omitempty"`
	ParticipationRewardPercentage *float64 `json:"participationRewardPercentage" validate:"omitempty"`
	Live                          *bool    `json:"live" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// FacultyLectureResponse swaps the attendance roster for its size.
type FacultyLectureResponse struct {
	LectureID                     string  `json:"lectureId"`
	CourseID                      string  `json:"courseId"`
	Date                          int64   `json:"date"`
	Description                   string  `json:"description,omitempty"`
	ParticipationRewardPercentage float64 `json:"participationRewardPercentage"`
	Live                          bool    `json:"live"`
	HasLived                      bool    `json:"hasLived"`
	AttendanceNumber              int     `json:"attendanceNumber"`
}

// StudentLectureResponse carries the caller's own attendance flag and hides
// the live/hasLived state.
type StudentLectureResponse struct {
	LectureID                     string  `json:"lectureId"`
	CourseID                      string  `json:"courseId"`
	Date                          int64   `json:"date"`
	Description                   string  `json:"description,omitempty"`
	ParticipationRewardPercentage float64 `json:"participationRewardPercentage"`
	Attendance                    bool    `json:"attendance"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func ToFacultyLectureResponse(lecture *m.LectureModel) FacultyLectureResponse {
	return FacultyLectureResponse{
		LectureID:                     lecture.LectureID.String(),
		CourseID:                      lecture.LectureCourseID.String(),
		Date:                          lecture.LectureDate,
		Description:                   lecture.LectureDescription,
		ParticipationRewardPercentage: lecture.LectureParticipationRewardPercentage,
		Live:                          lecture.LectureLive,
		HasLived:                      lecture.LectureHasLived,
		AttendanceNumber:              len(lecture.LectureStudentsAttendance),
	}
}

func ToStudentLectureResponse(lecture *m.LectureModel, studentID string) StudentLectureResponse {
	return StudentLectureResponse{
		LectureID:                     lecture.LectureID.String(),
		CourseID:                      lecture.LectureCourseID.String(),
		Date:                          lecture.LectureDate,
		Description:                   lecture.LectureDescription,
		ParticipationRewardPercentage: lecture.LectureParticipationRewardPercentage,
		Attendance:                    lecture.HasAttendance(studentID),
	}
}
