package models

// SignupRequest represents the request body for user signup
type SignupRequest struct {
	Name            string  `json:"name" binding:"required,min=2"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,e164phone"`
	Password        string  `json:"password" binding:"required,min=6,strongpassword"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	Profession      *string `json:"profession,omitempty" binding:"omitempty,oneof=salary business student freelancer other"`
}

// LoginRequest represents the request body for user login.
// Key may be either an email address or an E.164 phone number.
type LoginRequest struct {
	Key      string `json:"key" binding:"required,emailorphone"`
	Password string `json:"password" binding:"required,min=6"`
}
