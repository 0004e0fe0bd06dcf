package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/master/department"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockContext(t *testing.T) (context.Context, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	// The repository picks the mock up from the context, the same way it
	// would pick up a transaction.
	return database.WithQuerier(context.Background(), mock), mock
}

func TestDepartmentRepository_Create(t *testing.T) {
	ctx, mock := newMockContext(t)
	repo := NewDepartmentRepository(&database.DB{})

	now := time.Now()
	mock.ExpectQuery("INSERT INTO departments").
		WithArgs("Engineering").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow("dep-1", "Engineering", now, now))

	created, err := repo.Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, "dep-1", created.ID)
	assert.Equal(t, "Engineering", created.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	ctx, mock := newMockContext(t)
	repo := NewDepartmentRepository(&database.DB{})

	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_List(t *testing.T) {
	ctx, mock := newMockContext(t)
	repo := NewDepartmentRepository(&database.DB{})

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow("dep-1", "Engineering", now, now).
			AddRow("dep-2", "Finance", now, now))

	departments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Finance", departments[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Update_NotFound(t *testing.T) {
	ctx, mock := newMockContext(t)
	repo := NewDepartmentRepository(&database.DB{})

	mock.ExpectExec("UPDATE departments").
		WithArgs("Engineering", "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(ctx, department.UpdateDepartmentRequest{ID: "missing", Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Delete(t *testing.T) {
	ctx, mock := newMockContext(t)
	repo := NewDepartmentRepository(&database.DB{})

	mock.ExpectExec("DELETE FROM departments").
		WithArgs("dep-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(ctx, "dep-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
