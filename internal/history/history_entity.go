package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

// EmployeeHistory is one effective-dated period of an employee's
// organizational attributes. The snapshot columns describe the employee
// during [EffectiveFrom, EffectiveTo); a nil EffectiveTo marks the
// currently open period. Rows are immutable once closed and are never
// deleted.
type EmployeeHistory struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	DepartmentID  *uuid.UUID
	Position      string
	OrgRole       domain.OrgRole
	ChangeType    string
	Reason        string
	Source        string
	ChangedBy     string
	CreatedAt     time.Time
}

// Snapshot is the comparable subset of an employee's attributes tracked
// by history.
type Snapshot struct {
	DepartmentID *uuid.UUID
	Position     string
	OrgRole      domain.OrgRole
}

func (h EmployeeHistory) Snapshot() Snapshot {
	return Snapshot{
		DepartmentID: h.DepartmentID,
		Position:     h.Position,
		OrgRole:      h.OrgRole,
	}
}
