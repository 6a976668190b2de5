package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Leonguyenbk/QLCV/internal/auth"
	autherrors "github.com/Leonguyenbk/QLCV/internal/auth/errors"
	"github.com/Leonguyenbk/QLCV/internal/domain"
	"github.com/Leonguyenbk/QLCV/internal/employee"
	"github.com/Leonguyenbk/QLCV/internal/user"
)

type fakeUserRepo struct {
	user.Repository
	byUsername func(ctx context.Context, username string) (*user.User, error)
	byID       func(ctx context.Context, id string) (*user.User, error)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.byUsername(ctx, username)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return f.byID(ctx, id)
}

type fakeEmployeeRepo struct {
	employee.Repository
	byID func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.byID(ctx, id)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	emplID := uuid.New()
	deptID := uuid.New()
	account := &user.User{
		ID:           uuid.New(),
		Username:     "hruser",
		PasswordHash: hashOf(t, "correct horse"),
		SystemRole:   domain.SystemRoleHRDepartment,
		EmployeeID:   &emplID,
	}

	users := &fakeUserRepo{
		byUsername: func(ctx context.Context, username string) (*user.User, error) {
			if username != "hruser" {
				return nil, gorm.ErrRecordNotFound
			}
			return account, nil
		},
	}
	employees := &fakeEmployeeRepo{
		byID: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:           emplID,
				DepartmentID: &deptID,
				OrgRole:      domain.OrgRoleTeamLead,
			}, nil
		},
	}

	svc := auth.NewService(users, employees)

	t.Run("success carries employee identity", func(t *testing.T) {
		access, refresh, resp, err := svc.Login(ctx, "hruser", "correct horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "HR_DEPARTMENT", resp.SystemRole)
		assert.Equal(t, emplID.String(), resp.EmployeeID)
		assert.Equal(t, deptID.String(), resp.DepartmentID)
		assert.Equal(t, "TEAM_LEAD", resp.OrgRole)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "hruser", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_NoLinkedEmployee(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	account := &user.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hashOf(t, "pw123"),
		SystemRole:   domain.SystemRoleAdmin,
	}

	users := &fakeUserRepo{
		byUsername: func(ctx context.Context, username string) (*user.User, error) {
			return account, nil
		},
	}
	employees := &fakeEmployeeRepo{
		byID: func(ctx context.Context, id string) (*employee.Employee, error) {
			t.Fatal("no employee lookup for an unlinked account")
			return nil, nil
		},
	}

	svc := auth.NewService(users, employees)

	_, _, resp, err := svc.Login(context.Background(), "admin", "pw123")
	assert.NoError(t, err)
	assert.Empty(t, resp.EmployeeID)
	assert.Empty(t, resp.DepartmentID)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	account := &user.User{
		ID:           uuid.New(),
		Username:     "staff",
		PasswordHash: hashOf(t, "pw123"),
		SystemRole:   domain.SystemRoleStaff,
	}

	users := &fakeUserRepo{
		byUsername: func(ctx context.Context, username string) (*user.User, error) {
			return account, nil
		},
		byID: func(ctx context.Context, id string) (*user.User, error) {
			if id != account.ID.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return account, nil
		},
	}

	svc := auth.NewService(users, &fakeEmployeeRepo{})

	_, refresh, _, err := svc.Login(ctx, "staff", "pw123")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, account.ID.String(), resp.ID)

	_, _, _, err = svc.RefreshToken(ctx, "garbage.token.here")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
