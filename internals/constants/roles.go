package constants

// Roles carried inside the session token. Faculty own courses and lectures,
// students join courses by code and attend lectures.
const (
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Error message templates for role gates
const (
	ErrOnlyFacultyCanAccess = "Only faculty is allowed to do this operation"
	ErrOnlyStudentCanAccess = "Only student is allowed to do this operation"
)

var AllRoles = []string{
	RoleFaculty,
	RoleStudent,
}
