package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) calendar.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateBatch(ctx context.Context, events []calendar.Event) ([]calendar.Event, error) {
	if len(events) == 0 {
		return []calendar.Event{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_events (
			id, title, description, start_date, end_date, type, synced,
			earliest_attendance_id, latest_attendance_id, created_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	created := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		err := q.QueryRow(ctx, query,
			ev.Title, ev.Description, ev.StartDate, ev.EndDate, ev.Type, ev.Synced,
			ev.EarliestAttendanceID, ev.LatestAttendanceID,
		).Scan(&ev.ID, &ev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar event: %w", err)
		}
		created = append(created, ev)
	}

	return created, nil
}

func (r *eventRepository) List(ctx context.Context, filter calendar.EventFilter) ([]calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("end_date <= $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `
		SELECT id, title, description, start_date, end_date, type, synced,
			earliest_attendance_id, latest_attendance_id, created_at
		FROM calendar_events
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_date ASC, title ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer rows.Close()

	events := make([]calendar.Event, 0)
	for rows.Next() {
		var ev calendar.Event
		err := rows.Scan(
			&ev.ID, &ev.Title, &ev.Description, &ev.StartDate, &ev.EndDate, &ev.Type, &ev.Synced,
			&ev.EarliestAttendanceID, &ev.LatestAttendanceID, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calendar events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) ExistsByTitleAndDate(ctx context.Context, title string, startDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM calendar_events WHERE title = $1 AND start_date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, title, startDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check calendar event existence: %w", err)
	}

	return exists, nil
}
