package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var archiveCols = []string{
	"id", "unit_id", "classification_code", "title", "description", "file_number",
	"location_id", "cabinet_prefix", "no_laci", "no_folder", "created_at", "updated_at",
}

func TestArchivePostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	locID := int64(7)
	rec := &model.ArchiveRecord{
		ID:                 "rec-1",
		UnitID:             1,
		ClassificationCode: "KU.01.02",
		Title:              "Laporan Keuangan",
		FileNumber:         3,
		LocationID:         &locID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	mock.ExpectExec("INSERT INTO archive_records").
		WithArgs(rec.ID, rec.UnitID, rec.ClassificationCode, rec.Title, rec.Description, rec.FileNumber, locID, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM archive_records r LEFT JOIN storage_locations l (.+) WHERE r.id = ?").
		WithArgs("rec-1").
		WillReturnRows(sqlmock.NewRows(archiveCols).
			AddRow("rec-1", int64(1), "KU.01.02", "Laporan Keuangan", "", 3, locID, "KU", "1", "3", now, now))

	got, err := repo.Create(ctx, rec)

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
	require.NotNil(t, got.Location)
	assert.Equal(t, model.StorageAddress{CabinetPrefix: "KU", DrawerNumber: "1", FolderNumber: "3"}, got.Location.StorageAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()

	t.Run("found without location", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM archive_records r (.+) WHERE r.id = ?").
			WithArgs("rec-1").
			WillReturnRows(sqlmock.NewRows(archiveCols).
				AddRow("rec-1", int64(1), "UM.01", "Surat", "", 1, nil, nil, nil, nil, time.Now(), time.Now()))

		rec, err := repo.FindByID(ctx, "rec-1")

		require.NoError(t, err)
		assert.Nil(t, rec.LocationID)
		assert.Nil(t, rec.Location)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM archive_records r (.+) WHERE r.id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		rec, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, rec)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := &model.ArchiveRecord{ID: "rec-1", UnitID: 1, ClassificationCode: "UM.02", Title: "Nota", FileNumber: 4, UpdatedAt: now}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE archive_records SET").
			WithArgs("rec-1", int64(1), "UM.02", "Nota", "", 4, nil, now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT (.+) FROM archive_records r").
			WithArgs("rec-1").
			WillReturnRows(sqlmock.NewRows(archiveCols).
				AddRow("rec-1", int64(1), "UM.02", "Nota", "", 4, nil, nil, nil, nil, now, now))

		got, err := repo.Update(ctx, rec)

		require.NoError(t, err)
		assert.Equal(t, 4, got.FileNumber)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE archive_records SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		got, err := repo.Update(ctx, rec)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM archive_records").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM archive_records r (.+) ORDER BY").
		WithArgs(int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows(archiveCols).
			AddRow("rec-1", int64(2), "KU.01", "Kuitansi", "", 1, int64(3), "KU", "1", "2", time.Now(), time.Now()))

	res, err := repo.List(ctx, repository.ArchiveFilter{UnitID: 2, PageQuery: repository.PageQuery{Limit: 10}})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)

	mock.ExpectExec("DELETE FROM archive_records WHERE id = ?").
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "rec-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_NextFileNumber(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)

	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(file_number\\), 0\\) \\+ 1 FROM archive_records").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(12))

	n, err := repo.NextFileNumber(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_CountActive(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()

	t.Run("excluded ids are bound as an array", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM archive_records r WHERE r.unit_id = \\$1 AND r.id::text <> ALL").
			WithArgs(int64(1), []string{"moved-1"}).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(49))

		n, err := repo.CountActive(ctx, 1, []string{"moved-1"})

		require.NoError(t, err)
		assert.Equal(t, 49, n)
	})

	t.Run("nil exclusion set is sent as empty array", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM archive_records r").
			WithArgs(int64(1), []string{}).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		n, err := repo.CountActive(ctx, 1, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM archive_records r").
			WillReturnError(errors.New("conn reset"))

		_, err := repo.CountActive(ctx, 1, nil)

		assert.EqualError(t, err, "conn reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_CountActiveInDrawer(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM archive_records r JOIN storage_locations l (.+) l.no_laci = \\$2").
		WithArgs(int64(1), "2", []string{"moved-1"}).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	n, err := repo.CountActiveInDrawer(context.Background(), 1, 2, []string{"moved-1"})

	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_StoredAddress(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	ctx := context.Background()

	t.Run("with location", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(l.no_laci, ''\\), COALESCE\\(l.no_folder, ''\\)").
			WithArgs("rec-1").
			WillReturnRows(sqlmock.NewRows([]string{"no_laci", "no_folder"}).AddRow("3", "12"))

		drawer, folder, err := repo.StoredAddress(ctx, "rec-1")

		require.NoError(t, err)
		assert.Equal(t, "3", drawer)
		assert.Equal(t, "12", folder)
	})

	t.Run("missing record", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, _, err := repo.StoredAddress(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_ListForRenumber(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArchivePostgres(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) ORDER BY r.file_number ASC, r.created_at ASC, r.id ASC").
		WithArgs(int64(1), []string{}).
		WillReturnRows(sqlmock.NewRows(archiveCols).
			AddRow("a", int64(1), "UM", "A", "", 2, nil, nil, nil, nil, now, now).
			AddRow("b", int64(1), "UM", "B", "", 5, nil, nil, nil, nil, now, now))

	recs, err := repo.ListForRenumber(context.Background(), 1, nil)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePostgres_UpdateFileNumbers(t *testing.T) {
	ctx := context.Background()
	changes := []repository.FileNumberChange{{ID: "a", FileNumber: 1}, {ID: "b", FileNumber: 2}}

	t.Run("commits all changes", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewArchivePostgres(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE archive_records SET file_number").WithArgs("a", 1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE archive_records SET file_number").WithArgs("b", 2).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.UpdateFileNumbers(ctx, changes))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewArchivePostgres(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE archive_records SET file_number").WithArgs("a", 1).WillReturnError(errors.New("deadlock"))
		mock.ExpectRollback()

		err := repo.UpdateFileNumbers(ctx, changes)

		assert.ErrorContains(t, err, "renumber a: deadlock")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no changes is a no-op", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewArchivePostgres(db)

		require.NoError(t, repo.UpdateFileNumbers(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
