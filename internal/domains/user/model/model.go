package model

import "mindwell/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldLevel       = "level"
	FieldFullName    = "full_name"
	FieldPhone       = "phone"
	FieldDateOfBirth = "date_of_birth"
	FieldTimezone    = "timezone"
	FieldIsVerified  = "is_verified"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

// User is a portal account: a patient by default, or a clinician/admin by
// level. Timezone is stored as free text because legacy imports carry display
// names and abbreviations; read it through timezone.Normalize, never raw.
type User struct {
	ID          string  `db:"id"`
	Email       string  `db:"email"`
	Password    string  `db:"password"`
	Level       string  `db:"level"`
	FullName    *string `db:"full_name"`
	Phone       *string `db:"phone"`
	DateOfBirth *string `db:"date_of_birth"`
	Timezone    string  `db:"timezone"`
	IsVerified  bool    `db:"is_verified"`
	LastLogin   *string `db:"last_login"`
	Active      bool    `db:"active"`
	model.Metadata
}
