package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gajikita/selaras-backend/internal/domain/master/position"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, name, base_salary, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, name, base_salary, created_at, updated_at
	`

	var created position.Position
	err := q.QueryRow(ctx, query, p.Name, p.BaseSalary).Scan(
		&created.ID, &created.Name, &created.BaseSalary, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return position.Position{}, position.ErrPositionNameExists
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return created, nil
}

func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, base_salary, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var p position.Position
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.BaseSalary, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return p, nil
}

func (r *positionRepository) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, base_salary, created_at, updated_at
		FROM positions
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	positions := make([]position.Position, 0)
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.BaseSalary, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}

func (r *positionRepository) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.BaseSalary != nil {
		args = append(args, *req.BaseSalary)
		setClauses = append(setClauses, fmt.Sprintf("base_salary = $%d", len(args)))
	}
	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	args = append(args, req.ID)
	query := fmt.Sprintf(
		`UPDATE positions SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return position.ErrPositionNameExists
		}
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

func (r *positionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}
