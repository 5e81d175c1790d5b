package model

import "mindwell/shared/model"

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID          = "id"
	FieldPatientID   = "patient_id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldFileURL     = "file_url"
	FieldFileName    = "file_name"
	FieldContentType = "content_type"

	CategoryIntakeForm    = "intake_form"
	CategoryInsuranceCard = "insurance_card"
	CategoryReferral      = "referral"
	CategoryOther         = "other"
)

type Document struct {
	ID          string `db:"id"`
	PatientID   string `db:"patient_id"`
	Title       string `db:"title"`
	Category    string `db:"category"`
	FileURL     string `db:"file_url"`
	FileName    string `db:"file_name"`
	ContentType string `db:"content_type"`
	model.Metadata
}
