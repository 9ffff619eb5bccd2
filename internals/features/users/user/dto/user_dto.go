// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	m "github.com/Harus-Bisa/backend/internals/features/users/user/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Update (partial JSON). newPassword is re-hashed by the service before it
// ever touches the users table.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty"`
	LastName    *string `json:"lastName" validate:"omitempty"`
	Email       *string `json:"email" validate:"omitempty,email"`
	School      *string `json:"school" validate:"omitempty"`
	NewPassword *string `json:"newPassword" validate:"omitempty,min=1"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// UserResponse never carries the password hash.
type UserResponse struct {
	UserID    string   `json:"userId"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	School    string   `json:"school"`
	Role      string   `json:"role"`
	CoursesID []string `json:"coursesId"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func ToUserResponse(user *m.UserModel) UserResponse {
	courses := []string(user.CoursesID)
	if courses == nil {
		courses = []string{}
	}
	return UserResponse{
		UserID:    user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		School:    user.School,
		Role:      user.Role,
		CoursesID: courses,
	}
}
