package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUnitPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name FROM units WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Bagian Umum"))

	u, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bagian Umum", u.Name)

	mock.ExpectQuery("SELECT id, name FROM units WHERE id = ?").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	u, err = repo.FindByID(ctx, 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUnitPostgres(db)

	mock.ExpectQuery("SELECT id, name FROM units ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "Bagian Keuangan").
			AddRow(int64(1), "Bagian Umum"))

	units, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Bagian Keuangan", units[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
