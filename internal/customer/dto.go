// BYH Music Store | 2026
// dto.go

package customer

import (
	"time"
)

// RegisterRequest is the public storefront signup payload. Role is never
// accepted from the client; every signup becomes a cliente.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=200"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Address  string `json:"address"  validate:"omitempty,max=500"`
}

// CreateCustomerRequest is the admin panel's version of signup. It may set
// the role explicitly.
type CreateCustomerRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=200"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=cliente admin"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Address  string `json:"address"  validate:"omitempty,max=500"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=200"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Role    string `json:"role"    validate:"omitempty,oneof=cliente admin"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.Phone != nil {
		resp.Phone = *u.Phone
	}
	if u.Address != nil {
		resp.Address = *u.Address
	}
	return resp
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
