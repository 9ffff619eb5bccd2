// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	authdto "github.com/Harus-Bisa/backend/internals/features/users/auth/dto"
	userModel "github.com/Harus-Bisa/backend/internals/features/users/user/model"
)

var (
	ErrEmailAlreadyExists = errors.New("Email already exists")
	ErrInvalidCredential  = errors.New("Please provide correct email and password")
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

// Signup hashes the password and creates the account. The email must not be
// taken yet.
func (s *AuthService) Signup(req *authdto.SignupRequest) (*userModel.UserModel, error) {
	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", *req.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 10)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		ID:        uuid.New(),
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
		School:    *req.School,
		Role:      *req.Role,
		Password:  string(hashed),
		CoursesID: datatypes.JSONSlice[string]{},
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credential and issues a 24-hour bearer token. A wrong
// password and an unknown email fail the same way.
func (s *AuthService) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "user_email = ?", *req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*req.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		UserID: user.ID.String(),
		Role:   user.Role,
		Token:  token,
	}, nil
}
