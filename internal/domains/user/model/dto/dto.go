package dto

import (
	"carshare/internal/domains/user/model"
	gDto "carshare/shared/dto"
)

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	FullName   *string `json:"full_name,omitempty"`
	IsVerified bool    `json:"is_verified"`
	LastLogin  *string `json:"last_login,omitempty"`
	Active     bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}
