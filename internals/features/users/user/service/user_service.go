// file: internals/features/users/user/service/user_service.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userdto "github.com/Harus-Bisa/backend/internals/features/users/user/dto"
	userModel "github.com/Harus-Bisa/backend/internals/features/users/user/model"
)

var ErrUserNotFound = errors.New("User not found")

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetUser(userID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the allow-listed fields. newPassword is hashed before
// it replaces the stored credential.
func (s *UserService) UpdateUser(userID string, req *userdto.UpdateUserRequest) (*userModel.UserModel, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["user_first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["user_last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["user_email"] = *req.Email
	}
	if req.School != nil {
		updates["user_school"] = *req.School
	}
	if req.NewPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), 10)
		if err != nil {
			return nil, err
		}
		updates["user_password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetUser(userID)
}

// DeleteUser removes the account and returns the projection-ready record.
func (s *UserService) DeleteUser(userID string) (*userModel.UserModel, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// AddCourse records a course id on the user's course list (idempotent).
func (s *UserService) AddCourse(userID, courseID string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	user.AddCourse(courseID)
	return s.DB.Model(user).Update("user_courses_id", user.CoursesID).Error
}

// RemoveCourse drops a course id from the user's course list.
func (s *UserService) RemoveCourse(userID, courseID string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	user.RemoveCourse(courseID)
	return s.DB.Model(user).Update("user_courses_id", user.CoursesID).Error
}

// GetCoursesID returns the ids of the courses the user belongs to.
func (s *UserService) GetCoursesID(userID string) ([]string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return []string(user.CoursesID), nil
}
