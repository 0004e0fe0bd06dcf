package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.notes,
	a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

const attendanceJoins = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Status, a.Notes).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.CheckIn, &created.CheckOut,
		&created.Status, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyRecorded
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + attendanceJoins + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	args = append(args, filter.Limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetClause := fmt.Sprintf(" OFFSET $%d", len(args))

	query := `SELECT ` + attendanceColumns + attendanceJoins + where +
		` ORDER BY a.date DESC, employee_name ASC` + limitClause + offsetClause

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
