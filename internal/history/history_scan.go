package history

import (
	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// uuidOrNil maps a nil pointer to a SQL NULL.
func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}

func orgRole2Domain(s string) domain.OrgRole {
	role, err := domain.ParseOrgRole(s)
	if err != nil {
		return domain.OrgRole(s)
	}
	return role
}
