package history

import "github.com/google/uuid"

// Change-type labels are stored exactly as the admin console displays
// them; the Vietnamese strings are part of the persisted data contract.
const (
	ChangeTypeCreate     = "CREATE"
	ChangeTypeDepartment = "Chuyển bộ phận"
	ChangeTypePosition   = "Chức vụ"
	ChangeTypeRole       = "Vai trò"
	ChangeTypeGeneric    = "Cập nhật"
)

// SourceAdmin marks history rows written through the admin console.
const SourceAdmin = "admin"

type fieldDiff struct {
	Department bool
	Position   bool
	OrgRole    bool
}

func (d fieldDiff) any() bool {
	return d.Department || d.Position || d.OrgRole
}

// classify picks the change type by priority: a department transfer wins
// over a title change, which wins over a role change.
func (d fieldDiff) classify() string {
	switch {
	case d.Department:
		return ChangeTypeDepartment
	case d.Position:
		return ChangeTypePosition
	case d.OrgRole:
		return ChangeTypeRole
	default:
		return ChangeTypeGeneric
	}
}

// diff compares snapshots by value; uuid pointers are equal when both are
// nil or both point to the same id.
func diff(old, proposed Snapshot) fieldDiff {
	return fieldDiff{
		Department: !uuidPtrEqual(old.DepartmentID, proposed.DepartmentID),
		Position:   old.Position != proposed.Position,
		OrgRole:    old.OrgRole != proposed.OrgRole,
	}
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
