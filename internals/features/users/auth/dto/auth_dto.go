// file: internals/features/users/auth/dto/auth_dto.go
package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Signup (JSON). Field order drives which missing field is reported first.
type SignupRequest struct {
	FirstName *string `json:"firstName" validate:"required"`
	LastName  *string `json:"lastName" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	School    *string `json:"school" validate:"required"`
	Role      *string `json:"role" validate:"required"`
	Password  *string `json:"password" validate:"required"`
}

// Login (JSON)
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// LoginResponse is the credential handed back on a successful login.
type LoginResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}
