package audit

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of employee history changes, written
// by the kafka consumer so the request path never blocks on auditing.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	HistoryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Action     string    `gorm:"type:varchar(50);not null"`
	ChangedBy  string    `gorm:"type:varchar(100);not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
