package history

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *EmployeeHistory) error
	FindOpenByEmployee(ctx context.Context, employeeID string) (*EmployeeHistory, error)
	Close(ctx context.Context, id string, effectiveTo time.Time) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]EmployeeHistory, error)
}

// ErrNoOpenPeriod is returned by FindOpenByEmployee when the employee has
// no row with effective_to IS NULL.
var ErrNoOpenPeriod = sql.ErrNoRows

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

const historyColumns = `
	id::text,
	employee_id::text,
	effective_from,
	effective_to,
	department_id,
	position,
	org_role,
	change_type,
	reason,
	source,
	changed_by,
	created_at
`

func (r *repository) Create(ctx context.Context, h *EmployeeHistory) error {
	query := `
        INSERT INTO employee_histories (
            id, employee_id, effective_from, effective_to,
            department_id, position, org_role,
            change_type, reason, source, changed_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		h.ID, h.EmployeeID, h.EffectiveFrom, h.EffectiveTo,
		uuidOrNil(h.DepartmentID), h.Position, string(h.OrgRole),
		h.ChangeType, h.Reason, h.Source, h.ChangedBy,
	)
	return err
}

// FindOpenByEmployee returns the current open period: effective_to IS
// NULL, latest effective_from, same-day ties broken by latest created_at.
func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*EmployeeHistory, error) {
	query := `
SELECT ` + historyColumns + `
FROM employee_histories
WHERE employee_id = $1 AND effective_to IS NULL
ORDER BY effective_from DESC, created_at DESC, id DESC
LIMIT 1
`

	row := r.queryer().QueryRowContext(ctx, query, employeeID)
	h, err := scanHistory(row)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Close stamps effective_to on an open period. The effective_to IS NULL
// guard keeps closed rows immutable.
func (r *repository) Close(ctx context.Context, id string, effectiveTo time.Time) error {
	query := `
UPDATE employee_histories
SET effective_to = $2
WHERE id = $1 AND effective_to IS NULL
`
	res, err := r.execer().ExecContext(ctx, query, id, effectiveTo)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]EmployeeHistory, error) {
	query := `
SELECT ` + historyColumns + `
FROM employee_histories
WHERE employee_id = $1
ORDER BY effective_from ASC, created_at ASC, id ASC
`

	rows, err := r.queryer().QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EmployeeHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *h)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (*EmployeeHistory, error) {
	var (
		h          EmployeeHistory
		idStr      string
		empStr     string
		deptID     sql.NullString
		orgRole    string
		effectiveT sql.NullTime
	)

	if err := row.Scan(
		&idStr,
		&empStr,
		&h.EffectiveFrom,
		&effectiveT,
		&deptID,
		&h.Position,
		&orgRole,
		&h.ChangeType,
		&h.Reason,
		&h.Source,
		&h.ChangedBy,
		&h.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if h.ID, err = parseUUID(idStr); err != nil {
		return nil, err
	}
	if h.EmployeeID, err = parseUUID(empStr); err != nil {
		return nil, err
	}
	if deptID.Valid {
		id, err := parseUUID(deptID.String)
		if err != nil {
			return nil, err
		}
		h.DepartmentID = &id
	}
	if effectiveT.Valid {
		t := effectiveT.Time
		h.EffectiveTo = &t
	}
	h.OrgRole = orgRole2Domain(orgRole)

	return &h, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) queryer() interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
