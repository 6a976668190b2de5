package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	departmenterrors "github.com/Leonguyenbk/QLCV/internal/department/errors"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, d *Department) error
	findAllFn        func(ctx context.Context) ([]Department, error)
	findByIDFn       func(ctx context.Context, id string) (*Department, error)
	updateFn         func(ctx context.Context, d *Department) error
	deleteFn         func(ctx context.Context, id string) error
	countEmployeesFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                    { return f }
func (f *fakeRepo) Create(ctx context.Context, d *Department) error { return f.createFn(ctx, d) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Department, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Department, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, d *Department) error { return f.updateFn(ctx, d) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error     { return f.deleteFn(ctx, id) }
func (f *fakeRepo) CountEmployees(ctx context.Context, id string) (int64, error) {
	return f.countEmployeesFn(ctx, id)
}

func TestDepartmentService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Department) error { return nil },
	}

	svc := NewService(db, repo, rdb)

	mock.ExpectBegin()
	mock.ExpectCommit()
	redisMock.ExpectDel(OptionsCacheKey).SetVal(1)

	resp, err := svc.Create(context.Background(), CreateDepartmentRequest{Name: "Engineering"})
	assert.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDepartmentService_Create_NameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Department) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameTaken)
}

func TestDepartmentService_GetOptions(t *testing.T) {
	deptID := uuid.New()

	t.Run("cache hit skips the database", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		cached, _ := json.Marshal([]DepartmentResponse{{ID: deptID.String(), Name: "HR"}})
		redisMock.ExpectGet(OptionsCacheKey).SetVal(string(cached))

		repo := &fakeRepo{
			findAllFn: func(ctx context.Context) ([]Department, error) {
				t.Fatal("cache hit must not query the database")
				return nil, nil
			},
		}

		svc := NewService(db, repo, rdb)

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "HR", resp[0].Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		expected, _ := json.Marshal([]DepartmentResponse{{ID: deptID.String(), Name: "HR"}})
		redisMock.ExpectGet(OptionsCacheKey).RedisNil()
		redisMock.ExpectSet(OptionsCacheKey, expected, 30*time.Minute).SetVal("OK")

		repo := &fakeRepo{
			findAllFn: func(ctx context.Context) ([]Department, error) {
				return []Department{{ID: deptID, Name: "HR"}}, nil
			},
		}

		svc := NewService(db, repo, rdb)

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	t.Run("refused while employees remain", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{
			countEmployeesFn: func(ctx context.Context, id string) (int64, error) { return 3, nil },
			deleteFn: func(ctx context.Context, id string) error {
				t.Fatal("a non-empty department must not be deleted")
				return nil
			},
		}

		svc := NewService(db, repo, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()
		err := svc.Delete(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty department deleted", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		repo := &fakeRepo{
			countEmployeesFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
			deleteFn:         func(ctx context.Context, id string) error { return nil },
		}

		svc := NewService(db, repo, rdb)

		mock.ExpectBegin()
		mock.ExpectCommit()
		redisMock.ExpectDel(OptionsCacheKey).SetVal(1)

		err := svc.Delete(context.Background(), uuid.New().String())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
