package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel represents the users table. CoursesID mirrors the course
// membership list owned by the user (the Course record is owned elsewhere).
type UserModel struct {
	ID        uuid.UUID                   `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FirstName string                      `gorm:"column:user_first_name;size:100;not null" json:"user_first_name"`
	LastName  string                      `gorm:"column:user_last_name;size:100;not null" json:"user_last_name"`
	Email     string                      `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	School    string                      `gorm:"column:user_school;size:255;not null" json:"user_school"`
	Role      string                      `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`
	Password  string                      `gorm:"column:user_password;not null" json:"-"`
	CoursesID datatypes.JSONSlice[string] `gorm:"column:user_courses_id" json:"user_courses_id"`
	CreatedAt time.Time                   `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time                   `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// HasCourse reports whether courseID is in the user's course list.
func (u *UserModel) HasCourse(courseID string) bool {
	for _, id := range u.CoursesID {
		if id == courseID {
			return true
		}
	}
	return false
}

// AddCourse appends courseID to the user's course list (set semantics).
func (u *UserModel) AddCourse(courseID string) {
	if u.HasCourse(courseID) {
		return
	}
	u.CoursesID = append(u.CoursesID, courseID)
}

// RemoveCourse pulls courseID from the user's course list.
func (u *UserModel) RemoveCourse(courseID string) {
	kept := u.CoursesID[:0]
	for _, id := range u.CoursesID {
		if id != courseID {
			kept = append(kept, id)
		}
	}
	u.CoursesID = kept
}
