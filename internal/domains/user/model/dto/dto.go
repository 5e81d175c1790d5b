package dto

import (
	"mindwell/internal/domains/user/model"
	"mindwell/shared"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	gModel "mindwell/shared/model"
	"mindwell/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email       string  `json:"email"                   validate:"required,email"`
	Password    string  `json:"password"                validate:"required,min=8"`
	Level       string  `json:"level"                   validate:"omitempty,oneof=admin clinician patient"`
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"         validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RolePatient
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return model.User{
		ID:          uuid.NewString(),
		Email:       r.Email,
		Password:    hashedPassword,
		Level:       level,
		FullName:    r.FullName,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		Timezone:    timezone.Normalize(r.Timezone),
		IsVerified:  isVerified,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Level       string  `json:"level"`
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Timezone    string  `json:"timezone"`
	IsVerified  bool    `json:"is_verified"`
	LastLogin   *string `json:"last_login,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.DateOfBirth = model.DateOfBirth
	r.Timezone = timezone.Normalize(model.Timezone)
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Level      *string `db:"level"       json:"level,omitempty"       validate:"omitempty,oneof=admin clinician patient"`
	FullName   *string `db:"full_name"   json:"full_name,omitempty"`
	Phone      *string `db:"phone"       json:"phone,omitempty"       validate:"omitempty,max=20"`
	IsVerified *bool   `db:"is_verified" json:"is_verified,omitempty"`
	Active     *bool   `db:"active"      json:"active,omitempty"`
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
