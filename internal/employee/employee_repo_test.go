package employee

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm: %v", err)
	}
	return gormDB, mock
}

// Two separate mock connections make the write routing visible: a repo
// bound via WithTx must execute on the service transaction, never on the
// base pool, so a rollback takes the employee row with it.
func TestRepository_WithTxWritesOnTransaction(t *testing.T) {
	gormDB, baseMock := newMockGorm(t)

	txDB, txMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer txDB.Close()

	id := uuid.New().String()

	txMock.ExpectBegin()
	txMock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txDB.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := NewRepository(gormDB).WithTx(tx)

	// A write escaping onto the base pool would fail here: the base mock
	// expects no statements at all.
	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, tx.Rollback())

	assert.NoError(t, baseMock.ExpectationsWereMet())
	assert.NoError(t, txMock.ExpectationsWereMet())
}

func TestRepository_WithoutTxWritesOnPool(t *testing.T) {
	gormDB, baseMock := newMockGorm(t)

	id := uuid.New().String()

	baseMock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(gormDB)
	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, baseMock.ExpectationsWereMet())
}

func TestRepository_WithTxLeavesBaseRepoUnbound(t *testing.T) {
	gormDB, baseMock := newMockGorm(t)

	txDB, txMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	txMock.ExpectRollback()

	base := NewRepository(gormDB)
	_ = base.WithTx(tx)

	// Deriving a tx-bound repo must not rebind the original one.
	id := uuid.New().String()
	baseMock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, base.Delete(context.Background(), id))
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, baseMock.ExpectationsWereMet())
	assert.NoError(t, txMock.ExpectationsWereMet())
}
