package absence

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

type Absence struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_absence_slot,priority:1"`
	WorkDate    time.Time          `gorm:"type:date;not null;uniqueIndex:uq_absence_slot,priority:2"`
	Part        domain.AbsencePart `gorm:"type:varchar(10);not null;uniqueIndex:uq_absence_slot,priority:3"`
	IsPermitted bool               `gorm:"not null"`
	Reason      string             `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Absence) TableName() string {
	return "absences"
}
