package model

import "mindwell/shared/model"

const (
	TableName  = "clinicians"
	EntityName = "clinician"

	FieldID                = "id"
	FieldFullName          = "full_name"
	FieldSpecialty         = "specialty"
	FieldCredentials       = "credentials"
	FieldBio               = "bio"
	FieldTimezone          = "timezone"
	FieldPhoto             = "photo"
	FieldAcceptingPatients = "accepting_patients"
	FieldActive            = "active"
)

type Clinician struct {
	ID                string `db:"id"`
	FullName          string `db:"full_name"`
	Specialty         string `db:"specialty"`
	Credentials       string `db:"credentials"`
	Bio               string `db:"bio"`
	Timezone          string `db:"timezone"`
	Photo             string `db:"photo"`
	AcceptingPatients bool   `db:"accepting_patients"`
	Active            bool   `db:"active"`
	model.Metadata
}
