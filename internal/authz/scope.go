package authz

import (
	"gorm.io/gorm"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

// Scope restricts employee-level listings for department-scoped HR
// accounts. Admin and general HR see everything; HR_DEPARTMENT is pinned
// to its own department, and one without a department sees nothing.
func Scope(actor Subject) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.SystemRole != domain.SystemRoleHRDepartment {
			return db
		}
		if actor.DepartmentID == nil {
			return db.Where("1 = 0")
		}
		return db.Where("department_id = ?", *actor.DepartmentID)
	}
}
