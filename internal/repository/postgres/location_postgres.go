package postgres

import (
	"context"
	"database/sql"
	"errors"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// LocationPostgres is a PostgreSQL implementation of repository.LocationRepository.
type LocationPostgres struct {
	db *sql.DB
}

// NewLocationPostgres creates a new LocationPostgres repository.
func NewLocationPostgres(db *sql.DB) *LocationPostgres {
	return &LocationPostgres{db: db}
}

var _ repository.LocationRepository = (*LocationPostgres)(nil)

// FindOrCreate looks the address up by its natural key and inserts it when missing.
// The unique constraint on (unit_id, cabinet_prefix, no_laci, no_folder) resolves
// concurrent inserts of the same address to one row.
func (r *LocationPostgres) FindOrCreate(ctx context.Context, unitID int64, addr model.StorageAddress) (*model.StorageLocation, error) {
	const qFind = `
		SELECT id
		FROM storage_locations
		WHERE unit_id = $1 AND cabinet_prefix = $2 AND no_laci = $3 AND no_folder = $4
	`
	loc := &model.StorageLocation{UnitID: unitID, StorageAddress: addr}

	err := r.db.QueryRowContext(ctx, qFind, unitID, addr.CabinetPrefix, addr.DrawerNumber, addr.FolderNumber).Scan(&loc.ID)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// RETURNING only yields a row on DO UPDATE, hence the no-op update.
	const qInsert = `
		INSERT INTO storage_locations (unit_id, cabinet_prefix, no_laci, no_folder)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (unit_id, cabinet_prefix, no_laci, no_folder)
		DO UPDATE SET no_folder = EXCLUDED.no_folder
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, qInsert, unitID, addr.CabinetPrefix, addr.DrawerNumber, addr.FolderNumber).Scan(&loc.ID); err != nil {
		return nil, err
	}
	return loc, nil
}
