package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"mindwell/internal/domains/clinician/model"
	"mindwell/shared"
	gDto "mindwell/shared/dto"
	gModel "mindwell/shared/model"
	"mindwell/shared/timezone"
)

type CreateClinicianRequest struct {
	FullName          string                `json:"full_name"   validate:"required,max=100"`
	Specialty         string                `json:"specialty"   validate:"required,max=100"`
	Credentials       string                `json:"credentials" validate:"omitempty,max=100"`
	Bio               string                `json:"bio"         validate:"omitempty,max=2000"`
	Timezone          string                `json:"timezone"    validate:"omitempty,max=100"`
	Photo             *multipart.FileHeader `json:"photo"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile         multipart.File        `json:"-"`
	AcceptingPatients *bool                 `json:"accepting_patients" validate:"omitempty"`
	Active            *bool                 `json:"active"             validate:"omitempty"`
}

func (c *CreateClinicianRequest) ToModel(user string, photoURL string) model.Clinician {
	accepting := true
	if c.AcceptingPatients != nil {
		accepting = *c.AcceptingPatients
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Clinician{
		ID:                uuid.NewString(),
		FullName:          c.FullName,
		Specialty:         c.Specialty,
		Credentials:       c.Credentials,
		Bio:               c.Bio,
		Timezone:          timezone.Normalize(c.Timezone),
		Photo:             photoURL,
		AcceptingPatients: accepting,
		Active:            active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClinicianRequest struct {
	FullName          string                `db:"full_name"   json:"full_name"   validate:"omitempty,max=100"`
	Specialty         string                `db:"specialty"   json:"specialty"   validate:"omitempty,max=100"`
	Credentials       string                `db:"credentials" json:"credentials" validate:"omitempty,max=100"`
	Bio               string                `db:"bio"         json:"bio"         validate:"omitempty,max=2000"`
	Timezone          string                `db:"timezone"    json:"timezone"    validate:"omitempty,max=100"`
	Photo             *multipart.FileHeader `json:"photo"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile         multipart.File        `json:"-"`
	AcceptingPatients *bool                 `db:"accepting_patients" json:"accepting_patients" validate:"omitempty"`
	Active            *bool                 `db:"active"             json:"active"             validate:"omitempty"`
}

type ClinicianResponse struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	Specialty         string `json:"specialty"`
	Credentials       string `json:"credentials"`
	Bio               string `json:"bio"`
	Timezone          string `json:"timezone"`
	TimezoneLabel     string `json:"timezone_label"`
	Photo             string `json:"photo"`
	AcceptingPatients bool   `json:"accepting_patients"`
	Active            bool   `json:"active"`
	gDto.Metadata
}

func (r *ClinicianResponse) FromModel(model model.Clinician) {
	zone := timezone.Normalize(model.Timezone)

	r.ID = model.ID
	r.FullName = model.FullName
	r.Specialty = model.Specialty
	r.Credentials = model.Credentials
	r.Bio = model.Bio
	r.Timezone = zone
	r.TimezoneLabel = timezone.DisplayName(zone)
	r.Photo = model.Photo
	r.AcceptingPatients = model.AcceptingPatients
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCliniciansResponse struct {
	Clinicians []ClinicianResponse `json:"clinicians"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetCliniciansResponse) FromModels(models []model.Clinician, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clinicians = make([]ClinicianResponse, len(models))
	for i, mod := range models {
		r.Clinicians[i].FromModel(mod)
	}
}
