package dto

import (
	"nomad/internal/domains/user/model"
	"nomad/shared"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/timezone"
)

type UserResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	IsVerified bool    `json:"is_verified"`
	SignupType string  `json:"signup_type"`
	RoleID     int     `json:"role_id"`
	Role       string  `json:"role"`
	LastLogin  *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.IsVerified = model.IsVerified
	r.SignupType = model.SignupType
	r.RoleID = model.RoleID
	r.Role = model.RoleName()

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

type AssignRoleRequest struct {
	RoleID int `json:"role_id" validate:"required,gte=1,lte=6"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
