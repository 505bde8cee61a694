package postgres

import (
	"context"
	"testing"
	"time"

	"archiveapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInactivePostgres_MovedRecordIDs(t *testing.T) {
	db, mock := newMock(t)
	repo := NewInactivePostgres(db)
	ctx := context.Background()

	t.Run("ids", func(t *testing.T) {
		mock.ExpectQuery("SELECT archive_record_id::text FROM inactive_transfers").
			WillReturnRows(sqlmock.NewRows([]string{"archive_record_id"}).AddRow("a").AddRow("b"))

		ids, err := repo.MovedRecordIDs(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
	})

	t.Run("empty table yields empty non-nil set", func(t *testing.T) {
		mock.ExpectQuery("SELECT archive_record_id::text FROM inactive_transfers").
			WillReturnRows(sqlmock.NewRows([]string{"archive_record_id"}))

		ids, err := repo.MovedRecordIDs(ctx)

		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInactivePostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewInactivePostgres(db)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO inactive_transfers").
		WithArgs("rec-1", "retensi aktif habis", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "archive_record_id", "note", "moved_at"}).
			AddRow(int64(5), "rec-1", "retensi aktif habis", now))

	got, err := repo.Create(context.Background(), &model.InactiveTransfer{
		ArchiveRecordID: "rec-1",
		Note:            "retensi aktif habis",
		MovedAt:         now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "rec-1", got.ArchiveRecordID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInactivePostgres_ExistsForRecord(t *testing.T) {
	db, mock := newMock(t)
	repo := NewInactivePostgres(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("rec-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForRecord(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
