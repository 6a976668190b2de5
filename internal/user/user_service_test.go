package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leonguyenbk/QLCV/internal/domain"
	usererrors "github.com/Leonguyenbk/QLCV/internal/user/errors"
)

type fakeRepo struct {
	Repository
	createFn   func(ctx context.Context, u *User) error
	findByIDFn func(ctx context.Context, id string) (*User, error)
	updateFn   func(ctx context.Context, u *User) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f }
func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }

func TestUserService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	emplID := uuid.New()

	var saved User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			saved = *u
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateUserRequest{
		Username:   "hruser",
		Password:   "supersecret",
		SystemRole: "HR_GENERAL",
		EmployeeID: emplID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "hruser", resp.Username)
	assert.Equal(t, "HR_GENERAL", resp.SystemRole)
	assert.Equal(t, emplID.String(), resp.EmployeeID)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "supersecret", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("supersecret")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username:   "hruser",
		Password:   "supersecret",
		SystemRole: "STAFF",
	})

	assert.ErrorIs(t, err, usererrors.ErrUsernameTaken)
}

func TestUserService_Create_EmployeeAlreadyLinked(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_employee_id"}
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username:   "second-account",
		Password:   "supersecret",
		SystemRole: "STAFF",
		EmployeeID: uuid.New().String(),
	})

	assert.ErrorIs(t, err, usererrors.ErrEmployeeAlreadyLinked)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username:   "x",
		Password:   "supersecret",
		SystemRole: "SUPERUSER",
	})
	assert.Error(t, err)
}

func TestUserService_ResetPassword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	account := &User{
		ID:           uuid.New(),
		Username:     "hruser",
		PasswordHash: "old-hash",
		SystemRole:   domain.SystemRoleStaff,
	}

	var updated User
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) { return account, nil },
		updateFn: func(ctx context.Context, u *User) error {
			updated = *u
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.ResetPassword(context.Background(), account.ID.String(), ResetPasswordRequest{Password: "newpassword"})

	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")))
}
