package dto

import (
	userModel "mindwell/internal/domains/user/model"
	gDto "mindwell/shared/dto"
	"mindwell/shared/timezone"
)

type ProfileResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	FullName      *string `json:"full_name"`
	Phone         *string `json:"phone"`
	DateOfBirth   *string `json:"date_of_birth"`
	Timezone      string  `json:"timezone"`
	TimezoneLabel string  `json:"timezone_label"`
	LocalTime     string  `json:"local_time"`
	IsVerified    bool    `json:"is_verified"`
	LastLogin     *string `json:"last_login"`
	gDto.Metadata
}

// FromModel resolves the stored free-text timezone and includes the
// patient's current wall-clock time for display.
func (r *ProfileResponse) FromModel(m userModel.User) {
	zone := timezone.Normalize(m.Timezone)

	r.ID = m.ID
	r.Email = m.Email
	r.FullName = m.FullName
	r.Phone = m.Phone
	r.DateOfBirth = m.DateOfBirth
	r.Timezone = zone
	r.TimezoneLabel = timezone.DisplayName(zone)
	r.LocalTime = timezone.FormatAppointment(timezone.Now().UTC(), zone, timezone.PresetTime)
	r.IsVerified = m.IsVerified
	r.LastLogin = m.LastLogin
	r.Metadata.FromModel(m.Metadata)
}

type UpdateProfileRequest struct {
	FullName    *string `db:"full_name"     json:"full_name"     validate:"omitempty,max=100"`
	Phone       *string `db:"phone"         json:"phone"         validate:"omitempty,max=20"`
	DateOfBirth *string `db:"date_of_birth" json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Timezone    string  `db:"timezone"      json:"timezone"      validate:"omitempty,max=100"`
}
