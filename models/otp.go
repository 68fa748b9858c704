package models

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type VerifyOTPRequest struct {
	Email      string `json:"email" binding:"required,email"`
	EnteredOTP string `json:"enteredOtp" binding:"required,len=6"`
	Role       string `json:"role" binding:"omitempty,oneof=user provider"` // chosen by new users
}

type VerifyOTPResponse struct {
	Role      string `json:"role"`
	IsNewUser bool   `json:"isNewUser"`
	Token     string `json:"token"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	UserSession
	Token string `json:"token"`
}
