package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

type Employee struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code         string         `gorm:"type:varchar(20);uniqueIndex"`
	Name         string         `gorm:"type:varchar(100);not null"`
	YearOfBirth  *time.Time     `gorm:"type:date"`
	Position     string         `gorm:"type:varchar(50);not null"`
	Email        string         `gorm:"type:varchar(100)"`
	Phone        string         `gorm:"type:varchar(15)"`
	AvatarPath   string         `gorm:"type:varchar(255)"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid;index"`
	OrgRole      domain.OrgRole `gorm:"type:varchar(20);not null;default:MEMBER"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}
