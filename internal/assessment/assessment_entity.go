package assessment

import (
	"time"

	"github.com/google/uuid"
)

type TaskAssessment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Content        string    `gorm:"type:text;not null"`
	Score          int       `gorm:"not null"`
	AssessmentDate time.Time `gorm:"type:date;not null"`
	AssessorID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TaskAssessment) TableName() string {
	return "task_assessments"
}
