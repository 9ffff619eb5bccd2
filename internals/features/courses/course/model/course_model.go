package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseName        string    `gorm:"column:course_name;type:varchar(255);not null" json:"course_name"`
	CourseStartTerm   string    `gorm:"column:course_start_term;type:varchar(100);not null" json:"course_start_term"`
	CourseEndTerm     string    `gorm:"column:course_end_term;type:varchar(100);not null" json:"course_end_term"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`

	// 🔑 Short public token for student self-enrollment. Unique, never updated.
	CourseJoinCode string `gorm:"column:course_join_code;type:varchar(16);uniqueIndex;not null" json:"course_join_code"`

	// Denormalized instructor display names plus the membership id lists.
	CourseInstructors   datatypes.JSONSlice[string] `gorm:"column:course_instructors" json:"course_instructors"`
	CourseInstructorsID datatypes.JSONSlice[string] `gorm:"column:course_instructors_id" json:"course_instructors_id"`
	CourseStudentsID    datatypes.JSONSlice[string] `gorm:"column:course_students_id" json:"course_students_id"`
	CourseLecturesID    datatypes.JSONSlice[string] `gorm:"column:course_lectures_id" json:"course_lectures_id"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func pull(list datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	kept := list[:0]
	for _, v := range list {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

func (c *CourseModel) HasInstructor(userID string) bool {
	return contains(c.CourseInstructorsID, userID)
}

func (c *CourseModel) HasStudent(userID string) bool {
	return contains(c.CourseStudentsID, userID)
}

// AddStudent adds a student id to the membership list (idempotent).
func (c *CourseModel) AddStudent(userID string) {
	if c.HasStudent(userID) {
		return
	}
	c.CourseStudentsID = append(c.CourseStudentsID, userID)
}

func (c *CourseModel) RemoveStudent(userID string) {
	c.CourseStudentsID = pull(c.CourseStudentsID, userID)
}

// AddLecture adds a lecture id to the course's lecture list (idempotent).
func (c *CourseModel) AddLecture(lectureID string) {
	if contains(c.CourseLecturesID, lectureID) {
		return
	}
	c.CourseLecturesID = append(c.CourseLecturesID, lectureID)
}

func (c *CourseModel) RemoveLecture(lectureID string) {
	c.CourseLecturesID = pull(c.CourseLecturesID, lectureID)
}
