package model

import (
	"time"

	"mindwell/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID          = "id"
	FieldPatientID   = "patient_id"
	FieldClinicianID = "clinician_id"
	FieldStartAt     = "start_at"
	FieldDuration    = "duration_minutes"
	FieldTimezone    = "timezone"
	FieldReason      = "reason"
	FieldStatus      = "status"
	FieldCreatedBy   = "created_by"

	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment persists StartAt in UTC. Timezone records the IANA zone the
// patient booked in so the original wall-clock time can be recovered.
type Appointment struct {
	ID          string    `db:"id"`
	PatientID   string    `db:"patient_id"`
	ClinicianID string    `db:"clinician_id"`
	StartAt     time.Time `db:"start_at"`
	Duration    int       `db:"duration_minutes"`
	Timezone    string    `db:"timezone"`
	Reason      string    `db:"reason"`
	Status      string    `db:"status"`
	model.Metadata
}
