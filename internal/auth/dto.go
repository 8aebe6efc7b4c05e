// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	Email    string `json:"email"          validate:"required,email,max=255"`
	Password string `json:"password"       validate:"required,min=6,max=128"`
	Name     string `json:"name"           validate:"required,min=1,max=100"`
	Role     string `json:"role,omitempty" validate:"omitempty,role"`
}

type GoogleSessionRequest struct {
	SessionID string `json:"session_id" validate:"required,max=512"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	Role      string    `json:"role"`
	Division  string    `json:"division,omitempty"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type GoogleSessionResponse struct {
	User         UserResponse `json:"user"`
	SessionToken string       `json:"session_token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		Role:      u.Role,
		Division:  u.Division,
		Region:    u.Region,
		CreatedAt: u.CreatedAt,
	}
}
