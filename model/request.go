// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// Validation tags enforce shape at the entry point; semantic checks
// (email uniqueness) live in the handler.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

// LogoutRequest carries the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// VerifyEmailRequest carries the email-verification token from the
// verification link.
type VerifyEmailRequest struct {
	EmailVerifyToken string `json:"email_verify_token" validate:"required"`
}

// ForgotPasswordRequest starts a password reset for the given email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyForgotPasswordRequest checks a reset token without consuming it.
type VerifyForgotPasswordRequest struct {
	ForgotPasswordToken string `json:"forgot_password_token" validate:"required"`
}

// ResetPasswordRequest consumes a reset token and sets a new password.
type ResetPasswordRequest struct {
	ForgotPasswordToken string `json:"forgot_password_token" validate:"required"`
	Password            string `json:"password" validate:"required,min=8,max=20"`
	ConfirmPassword     string `json:"confirm_password" validate:"required,eqfield=Password"`
}
