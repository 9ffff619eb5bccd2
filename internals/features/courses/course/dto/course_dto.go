// file: internals/features/courses/course/dto/course_dto.go
package dto

import (
	m "github.com/Harus-Bisa/backend/internals/features/courses/course/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). Pointer fields distinguish "absent" from zero values so the
// controller can report the first missing field by name.
type CreateCourseRequest struct {
	CourseName        *string `json:"courseName" validate:"required"`
	StartTerm         *string `json:"startTerm" validate:"required"`
	EndTerm           *string `json:"endTerm" validate:"required"`
	CourseDescription *string `json:"courseDescription" validate:"omitempty"`
}

// Update (partial JSON). Only the fields below may be changed.
type UpdateCourseRequest struct {
	CourseName        *string `json:"courseName" validate:"omitempty"`
	StartTerm         *string `json:"startTerm" validate:"omitempty"`
	EndTerm           *string `json:"endTerm" validate:"omitempty"`
	CourseDescription *string `json:"courseDescription" validate:"omitempty"`
}

// Join (JSON)
type JoinCourseRequest struct {
	JoinCode *string `json:"joinCode" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// FacultyCourseResponse is the instructor-facing projection.
type FacultyCourseResponse struct {
	CourseID          string   `json:"courseId"`
	CourseName        string   `json:"courseName"`
	StartTerm         string   `json:"startTerm"`
	EndTerm           string   `json:"endTerm"`
	CourseDescription string   `json:"courseDescription,omitempty"`
	JoinCode          string   `json:"joinCode"`
	Instructors       []string `json:"instructors"`
	NumberOfStudents  int      `json:"numberOfStudents"`
	NumberOfLectures  int      `json:"numberOfLectures"`
}

// StudentCourseResponse hides the enrollment count from students.
type StudentCourseResponse struct {
	CourseID          string   `json:"courseId"`
	CourseName        string   `json:"courseName"`
	StartTerm         string   `json:"startTerm"`
	EndTerm           string   `json:"endTerm"`
	CourseDescription string   `json:"courseDescription,omitempty"`
	JoinCode          string   `json:"joinCode"`
	Instructors       []string `json:"instructors"`
	NumberOfLectures  int      `json:"numberOfLectures"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func ToFacultyCourseResponse(course *m.CourseModel) FacultyCourseResponse {
	return FacultyCourseResponse{
		CourseID:          course.CourseID.String(),
		CourseName:        course.CourseName,
		StartTerm:         course.CourseStartTerm,
		EndTerm:           course.CourseEndTerm,
		CourseDescription: course.CourseDescription,
		JoinCode:          course.CourseJoinCode,
		Instructors:       []string(course.CourseInstructors),
		NumberOfStudents:  len(course.CourseStudentsID),
		NumberOfLectures:  len(course.CourseLecturesID),
	}
}

func ToStudentCourseResponse(course *m.CourseModel) StudentCourseResponse {
	return StudentCourseResponse{
		CourseID:          course.CourseID.String(),
		CourseName:        course.CourseName,
		StartTerm:         course.CourseStartTerm,
		EndTerm:           course.CourseEndTerm,
		CourseDescription: course.CourseDescription,
		JoinCode:          course.CourseJoinCode,
		Instructors:       []string(course.CourseInstructors),
		NumberOfLectures:  len(course.CourseLecturesID),
	}
}
