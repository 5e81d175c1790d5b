package dto

import (
	"time"

	"github.com/google/uuid"

	"mindwell/internal/domains/appointment/model"
	"mindwell/shared"
	gDto "mindwell/shared/dto"
	gModel "mindwell/shared/model"
	"mindwell/shared/timezone"
)

type CreateAppointmentRequest struct {
	ClinicianID string `json:"clinician_id" validate:"required"`
	Date        string `json:"date"         validate:"required"`
	Time        string `json:"time"         validate:"required"`
	Timezone    string `json:"timezone"     validate:"omitempty,max=100"`
	Duration    int    `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	Reason      string `json:"reason"       validate:"omitempty,max=500"`
}

// ToModel interprets Date and Time as wall-clock values in the patient's
// zone and persists the instant in UTC.
func (c *CreateAppointmentRequest) ToModel(patientID string) (model.Appointment, error) {
	zone := timezone.Normalize(c.Timezone)

	startLocal, err := timezone.CreateDateTime(c.Date, c.Time, zone)
	if err != nil {
		return model.Appointment{}, err
	}

	duration := 50
	if c.Duration != 0 {
		duration = c.Duration
	}

	return model.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		ClinicianID: c.ClinicianID,
		StartAt:     startLocal.UTC(),
		Duration:    duration,
		Timezone:    zone,
		Reason:      c.Reason,
		Status:      model.StatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  patientID,
			ModifiedBy: patientID,
		},
	}, nil
}

type UpdateAppointmentRequest struct {
	Date     string `json:"date"     validate:"omitempty"`
	Time     string `json:"time"     validate:"omitempty"`
	Timezone string `db:"timezone"  json:"timezone" validate:"omitempty,max=100"`
	Duration *int   `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	Reason   string `db:"reason"    json:"reason"   validate:"omitempty,max=500"`
	Status   string `db:"status"    json:"status"   validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
}

type AppointmentResponse struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	ClinicianID   string `json:"clinician_id"`
	StartAtUTC    string `json:"start_at_utc"`
	LocalDate     string `json:"local_date"`
	LocalTime     string `json:"local_time"`
	Display       string `json:"display"`
	Timezone      string `json:"timezone"`
	TimezoneLabel string `json:"timezone_label"`
	Duration      int    `json:"duration_minutes"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	DSTAdvisory   bool   `json:"dst_advisory"`
	gDto.Metadata
}

// FromModel renders the stored UTC instant in the zone the appointment was
// booked in. Pass a different zone to render for another viewer.
func (r *AppointmentResponse) FromModel(m model.Appointment, zone string) {
	if zone == "" {
		zone = m.Timezone
	}
	zone = timezone.Normalize(zone)

	local := m.StartAt.In(timezone.Location(zone))

	r.ID = m.ID
	r.PatientID = m.PatientID
	r.ClinicianID = m.ClinicianID
	r.StartAtUTC = m.StartAt.UTC().Format(time.RFC3339)
	r.LocalDate = local.Format(timezone.LayoutDate)
	r.LocalTime = local.Format(timezone.LayoutClock)
	r.Display = timezone.FormatAppointment(m.StartAt, zone, timezone.PresetDateTime)
	r.Timezone = zone
	r.TimezoneLabel = timezone.DisplayName(zone)
	r.Duration = m.Duration
	r.Reason = m.Reason
	r.Status = m.Status
	r.DSTAdvisory = timezone.NearTransition(local, timezone.Location(zone))
	r.Metadata.FromModel(m.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, zone string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod, zone)
	}
}

// AppointmentEvent is published to Kafka on lifecycle changes.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	ClinicianID   string    `json:"clinician_id"`
	StartAtUTC    time.Time `json:"start_at_utc"`
	Timezone      string    `json:"timezone"`
	OccurredAt    time.Time `json:"occurred_at"`
}

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentCancelled = "appointment.cancelled"
)

func NewAppointmentEvent(eventType string, m model.Appointment) AppointmentEvent {
	return AppointmentEvent{
		Type:          eventType,
		AppointmentID: m.ID,
		PatientID:     m.PatientID,
		ClinicianID:   m.ClinicianID,
		StartAtUTC:    m.StartAt.UTC(),
		Timezone:      m.Timezone,
		OccurredAt:    timezone.Now().UTC(),
	}
}
