package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) attendance.AbsenceRepository {
	return &absenceRepository{db: db}
}

func (r *absenceRepository) Create(ctx context.Context, a attendance.Absence) (attendance.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (id, employee_id, date, status, notes, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, employee_id, date, status, notes, created_at
	`

	var created attendance.Absence
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Date, a.Status, a.Notes).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Absence{}, attendance.ErrAlreadyRecorded
		}
		return attendance.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return created, nil
}

func (r *absenceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM absences WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check absence existence: %w", err)
	}

	return exists, nil
}

func (r *absenceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ab.id, ab.employee_id, ab.date, ab.status, ab.notes, ab.created_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM absences ab
		JOIN employees e ON e.id = ab.employee_id
		WHERE ab.date >= $1 AND ab.date <= $2
		ORDER BY ab.date ASC, employee_name ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	absences := make([]attendance.Absence, 0)
	for rows.Next() {
		var a attendance.Absence
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt, &a.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}
