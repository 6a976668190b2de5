package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

type User struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Username     string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	SystemRole   domain.SystemRole `gorm:"type:varchar(30);not null"`
	EmployeeID   *uuid.UUID        `gorm:"type:uuid;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
