package dto

type RegisterUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type LogInUserRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

type ValidateTokenRequest struct {
	TokenValue string `json:"tokenValue"`
}

type ResendEmailVerificationRequest struct {
	Email string `json:"email"`
}

type ResendPhoneNumberVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type VerifyEmailAddressRequest struct {
	Token string `json:"token"`
}

type VerifyPhoneNumberRequest struct {
	UserID string `json:"userId"`
	Otp    string `json:"otp"`
}

type SendPasswordResetLinkRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// LogInPayload is returned by register, login and token-validation flows.
// Error carries a non-fatal, user-safe message (e.g. undelivered
// notification channels after an otherwise successful registration).
type LogInPayload struct {
	Error string    `json:"error,omitempty"`
	Token string    `json:"token,omitempty"`
	User  *SafeUser `json:"user,omitempty"`
}
