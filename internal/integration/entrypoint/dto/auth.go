package dto

import "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/auth"

// SignupRequest is the body for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is the body returned after a successful signup.
type SignupResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// ToSignupResponse converts a register output to a response body.
func ToSignupResponse(output *auth.RegisterUserOutput) SignupResponse {
	return SignupResponse{
		UserID:   output.UserID.String(),
		Email:    output.Email,
		Nickname: output.Nickname,
	}
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the body returned after a successful login.
type LoginResponse struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToLoginResponse converts a login output to a response body.
func ToLoginResponse(output *auth.LoginUserOutput) LoginResponse {
	return LoginResponse{
		UserID:       output.UserID.String(),
		Email:        output.Email,
		Nickname:     output.Nickname,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse is the body returned after a successful refresh.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutRequest is the body for POST /auth/logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
