package domain

import "time"

// AuditTimes is embedded by every persisted record. The repository sets
// CreatedAt on insert and UpdatedAt on update; application code never writes
// these fields.
type AuditTimes struct {
	CreatedAt time.Time
	UpdatedAt *time.Time
}
