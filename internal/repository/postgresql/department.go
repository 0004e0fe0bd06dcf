package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajikita/selaras-backend/internal/domain/master/department"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, d.Name).Scan(
		&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]department.Department, 0)
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.ErrDepartmentNameExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
