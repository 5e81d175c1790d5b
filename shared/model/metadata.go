package model

import "time"

// Metadata carries the audit columns shared by every table. CreatedAt and
// ModifiedAt have no db tag on purpose: they are populated by database
// defaults on insert and by the update builder on writes.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
