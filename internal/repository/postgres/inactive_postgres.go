package postgres

import (
	"context"
	"database/sql"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// InactivePostgres is a PostgreSQL implementation of repository.InactiveRepository.
type InactivePostgres struct {
	db *sql.DB
}

// NewInactivePostgres creates a new InactivePostgres repository.
func NewInactivePostgres(db *sql.DB) *InactivePostgres {
	return &InactivePostgres{db: db}
}

var _ repository.InactiveRepository = (*InactivePostgres)(nil)

// MovedRecordIDs returns every record id linked to an inactive transfer.
func (r *InactivePostgres) MovedRecordIDs(ctx context.Context) ([]string, error) {
	const q = `SELECT archive_record_id::text FROM inactive_transfers`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Create inserts a transfer and returns the stored row.
func (r *InactivePostgres) Create(ctx context.Context, t *model.InactiveTransfer) (*model.InactiveTransfer, error) {
	const q = `
		INSERT INTO inactive_transfers (archive_record_id, note, moved_at)
		VALUES ($1, $2, $3)
		RETURNING id, archive_record_id, note, moved_at
	`
	var out model.InactiveTransfer
	if err := r.db.QueryRowContext(ctx, q, t.ArchiveRecordID, t.Note, t.MovedAt).Scan(
		&out.ID,
		&out.ArchiveRecordID,
		&out.Note,
		&out.MovedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExistsForRecord reports whether a transfer already references the record.
func (r *InactivePostgres) ExistsForRecord(ctx context.Context, recordID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM inactive_transfers WHERE archive_record_id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, recordID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
