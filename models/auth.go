package models

// LoginRequest is the credentials payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
