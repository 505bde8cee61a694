package postgres

import (
	"context"
	"database/sql"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// UnitPostgres is a PostgreSQL implementation of repository.UnitRepository.
type UnitPostgres struct {
	db *sql.DB
}

// NewUnitPostgres creates a new UnitPostgres repository.
func NewUnitPostgres(db *sql.DB) *UnitPostgres {
	return &UnitPostgres{db: db}
}

var _ repository.UnitRepository = (*UnitPostgres)(nil)

// FindByID fetches a unit by id.
func (r *UnitPostgres) FindByID(ctx context.Context, id int64) (*model.Unit, error) {
	const q = `SELECT id, name FROM units WHERE id = $1`
	var u model.Unit
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all units ordered by name.
func (r *UnitPostgres) List(ctx context.Context) ([]model.Unit, error) {
	const q = `SELECT id, name FROM units ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]model.Unit, 0)
	for rows.Next() {
		var u model.Unit
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return units, nil
}
