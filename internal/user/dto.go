// AngelaMos | 2026
// dto.go

package user

import (
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/auth"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type CreateUserRequest struct {
	Email    string `json:"email"              validate:"required,email,max=255"`
	Name     string `json:"name"               validate:"required,min=1,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	Picture  string `json:"picture,omitempty"  validate:"omitempty,url,max=1024"`
	Role     string `json:"role"               validate:"required,role"`
	Division string `json:"division,omitempty" validate:"omitempty,division"`
	Region   string `json:"region,omitempty"   validate:"omitempty,region"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,role"`
	Division *string `json:"division,omitempty" validate:"omitempty,division"`
	Region   *string `json:"region,omitempty"   validate:"omitempty,region"`
}

type DeleteUserResponse struct {
	Message string `json:"message"`
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: core.StringValue(u.PasswordHash),
		Picture:      core.StringValue(u.Picture),
		Role:         u.Role,
		Division:     core.StringValue(u.Division),
		Region:       core.StringValue(u.Region),
		CreatedAt:    u.CreatedAt,
	}
}

// ToUserResponse never carries the password hash.
func ToUserResponse(u *User) auth.UserResponse {
	return auth.ToUserResponse(toUserInfo(u))
}

func ToUserResponseList(users []User) []auth.UserResponse {
	responses := make([]auth.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
