package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.hire_date,
	e.department_id, e.position_id,
	e.bank_name, e.bank_account_number, e.npwp,
	e.bpjs_kes_number, e.bpjs_tk_number,
	e.incentive, e.transportation_fee,
	e.status, e.created_at, e.updated_at, e.deleted_at,
	d.name AS department_name, p.name AS position_name, p.base_salary
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.HireDate,
		&e.DepartmentID, &e.PositionID,
		&e.BankName, &e.BankAccountNumber, &e.NPWP,
		&e.BPJSKesNumber, &e.BPJSTKNumber,
		&e.Incentive, &e.TransportationFee,
		&e.Status, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.DepartmentName, &e.PositionName, &e.BaseSalary,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, hire_date,
			department_id, position_id,
			bank_name, bank_account_number, npwp,
			bpjs_kes_number, bpjs_tk_number,
			incentive, transportation_fee,
			status, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.HireDate,
		e.DepartmentID, e.PositionID,
		e.BankName, e.BankAccountNumber, e.NPWP,
		e.BPJSKesNumber, e.BPJSTKNumber,
		e.Incentive, e.TransportationFee,
		e.Status,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.id = $1 AND e.deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.deleted_at IS NULL AND e.status = 'active'
		ORDER BY e.first_name ASC, e.last_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.deleted_at IS NULL"}
	args := make([]interface{}, 0, 4)

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.PositionID != nil {
		args = append(args, *filter.PositionID)
		conditions = append(conditions, fmt.Sprintf("e.position_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(e.first_name || ' ' || e.last_name) ILIKE $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*)` + employeeJoins + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	args = append(args, filter.Limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetClause := fmt.Sprintf(" OFFSET $%d", len(args))

	query := `SELECT ` + employeeColumns + employeeJoins + where +
		` ORDER BY e.first_name ASC, e.last_name ASC` + limitClause + offsetClause

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 14)
	args := make([]interface{}, 0, 14)

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.HireDate != nil {
		appendSet("hire_date", *req.HireDate)
	}
	if req.DepartmentID != nil {
		appendSet("department_id", *req.DepartmentID)
	}
	if req.PositionID != nil {
		appendSet("position_id", *req.PositionID)
	}
	if req.BankName != nil {
		appendSet("bank_name", *req.BankName)
	}
	if req.BankAccountNumber != nil {
		appendSet("bank_account_number", *req.BankAccountNumber)
	}
	if req.NPWP != nil {
		appendSet("npwp", *req.NPWP)
	}
	if req.BPJSKesNumber != nil {
		appendSet("bpjs_kes_number", *req.BPJSKesNumber)
	}
	if req.BPJSTKNumber != nil {
		appendSet("bpjs_tk_number", *req.BPJSTKNumber)
	}
	if req.Incentive != nil {
		appendSet("incentive", *req.Incentive)
	}
	if req.TransportationFee != nil {
		appendSet("transportation_fee", *req.TransportationFee)
	}
	if req.Status != nil {
		appendSet("status", *req.Status)
	}
	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	args = append(args, req.ID)
	query := fmt.Sprintf(
		`UPDATE employees SET %s WHERE id = $%d AND deleted_at IS NULL`,
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), status = 'inactive', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
