package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"mindwell/internal/domains/document/model"
	"mindwell/shared"
	gDto "mindwell/shared/dto"
	gModel "mindwell/shared/model"
	"mindwell/shared/timezone"
)

type UploadDocumentRequest struct {
	Title    string                `json:"title"    validate:"required,min=3,max=200"`
	Category string                `json:"category" validate:"required,oneof=intake_form insurance_card referral other"`
	File     *multipart.FileHeader `json:"file"     swaggerignore:"true" validate:"required,mimetypes=application/pdf image/png image/jpg image/jpeg,maxfilesize=5"`
	FileData multipart.File        `json:"-"`
}

func (u *UploadDocumentRequest) ToModel(patientID, fileURL, fileName, contentType string) model.Document {
	return model.Document{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		Title:       u.Title,
		Category:    u.Category,
		FileURL:     fileURL,
		FileName:    fileName,
		ContentType: contentType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  patientID,
			ModifiedBy: patientID,
		},
	}
}

type UpdateDocumentRequest struct {
	Title    string `db:"title"    json:"title"    validate:"omitempty,min=3,max=200"`
	Category string `db:"category" json:"category" validate:"omitempty,oneof=intake_form insurance_card referral other"`
}

type DocumentResponse struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	FileURL       string `json:"file_url"`
	FileName      string `json:"file_name"`
	ContentType   string `json:"content_type"`
	UploadedLocal string `json:"uploaded_local"`
	gDto.Metadata
}

// FromModel renders the upload instant in the viewer's zone.
func (r *DocumentResponse) FromModel(m model.Document, zone string) {
	zone = timezone.Normalize(zone)

	r.ID = m.ID
	r.PatientID = m.PatientID
	r.Title = m.Title
	r.Category = m.Category
	r.FileURL = m.FileURL
	r.FileName = m.FileName
	r.ContentType = m.ContentType
	r.UploadedLocal = timezone.FormatAppointment(m.CreatedAt, zone, timezone.PresetDateTime)
	r.Metadata.FromModel(m.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, zone string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, m := range models {
		r.Documents[i].FromModel(m, zone)
	}
}
