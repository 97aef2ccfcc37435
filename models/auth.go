package models

// Role identifies which dashboard a signed in user may use
type Role string

// Roles offered on the login page
const (
	RoleHospital      Role = "hospital"
	RoleHealthService Role = "health-service"
)

// LoginRequest is the body of the login form
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=hospital health-service"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// SessionUser describes the signed in user
type SessionUser struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	HospitalName string `json:"hospitalName,omitempty"`
}
