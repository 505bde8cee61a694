package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// ArchivePostgres is a PostgreSQL implementation of repository.ArchiveRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArchivePostgres struct {
	db *sql.DB
}

// NewArchivePostgres creates a new ArchivePostgres repository.
func NewArchivePostgres(db *sql.DB) *ArchivePostgres {
	return &ArchivePostgres{db: db}
}

var _ repository.ArchiveRepository = (*ArchivePostgres)(nil)

const archiveColumns = `r.id, r.unit_id, r.classification_code, r.title, r.description, r.file_number,
		r.location_id, l.cabinet_prefix, l.no_laci, l.no_folder, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArchive(s rowScanner) (*model.ArchiveRecord, error) {
	var (
		rec    model.ArchiveRecord
		locID  sql.NullInt64
		prefix sql.NullString
		drawer sql.NullString
		folder sql.NullString
	)
	if err := s.Scan(
		&rec.ID,
		&rec.UnitID,
		&rec.ClassificationCode,
		&rec.Title,
		&rec.Description,
		&rec.FileNumber,
		&locID,
		&prefix,
		&drawer,
		&folder,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if locID.Valid {
		id := locID.Int64
		rec.LocationID = &id
		rec.Location = &model.StorageLocation{
			ID:     id,
			UnitID: rec.UnitID,
			StorageAddress: model.StorageAddress{
				CabinetPrefix: prefix.String,
				DrawerNumber:  drawer.String,
				FolderNumber:  folder.String,
			},
		}
	}
	return &rec, nil
}

// excludeParam keeps an empty exclusion set from being sent as NULL, which would filter out every row.
func excludeParam(exclude []string) []string {
	if exclude == nil {
		return []string{}
	}
	return exclude
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

// Create inserts a new archive record and returns the stored row with its location.
func (r *ArchivePostgres) Create(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	const q = `
		INSERT INTO archive_records (id, unit_id, classification_code, title, description, file_number, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.ExecContext(ctx, q,
		rec.ID,
		rec.UnitID,
		rec.ClassificationCode,
		rec.Title,
		rec.Description,
		rec.FileNumber,
		nullableID(rec.LocationID),
		rec.CreatedAt,
		rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, rec.ID)
}

// Update rewrites the editable columns of a record.
func (r *ArchivePostgres) Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	const q = `
		UPDATE archive_records
		SET unit_id = $2, classification_code = $3, title = $4, description = $5,
			file_number = $6, location_id = $7, updated_at = $8
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		rec.ID,
		rec.UnitID,
		rec.ClassificationCode,
		rec.Title,
		rec.Description,
		rec.FileNumber,
		nullableID(rec.LocationID),
		rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.FindByID(ctx, rec.ID)
}

// FindByID fetches a single record by its ID.
func (r *ArchivePostgres) FindByID(ctx context.Context, id string) (*model.ArchiveRecord, error) {
	q := `
		SELECT ` + archiveColumns + `
		FROM archive_records r
		LEFT JOIN storage_locations l ON l.id = r.location_id
		WHERE r.id = $1
	`
	return scanArchive(r.db.QueryRowContext(ctx, q, id))
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *ArchivePostgres) List(ctx context.Context, f repository.ArchiveFilter) (*repository.PageResult[model.ArchiveRecord], error) {
	// A zero unit id disables the unit filter.
	const qCount = `SELECT COUNT(*) FROM archive_records r WHERE ($1::bigint = 0 OR r.unit_id = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, f.UnitID).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT ` + archiveColumns + `
		FROM archive_records r
		LEFT JOIN storage_locations l ON l.id = r.location_id
		WHERE ($1::bigint = 0 OR r.unit_id = $1)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, f.UnitID, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ArchiveRecord, 0)
	for rows.Next() {
		rec, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ArchiveRecord]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a record by ID. It does not return an error if the row does not exist.
func (r *ArchivePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM archive_records WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// NextFileNumber returns MAX(file_number)+1 for the unit, or 1 for an empty unit.
func (r *ArchivePostgres) NextFileNumber(ctx context.Context, unitID int64) (int, error) {
	const q = `SELECT COALESCE(MAX(file_number), 0) + 1 FROM archive_records WHERE unit_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, unitID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountActive counts the unit's records not present in exclude.
func (r *ArchivePostgres) CountActive(ctx context.Context, unitID int64, exclude []string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM archive_records r
		WHERE r.unit_id = $1 AND r.id::text <> ALL($2::text[])
	`
	var n int
	if err := r.db.QueryRowContext(ctx, q, unitID, excludeParam(exclude)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountActiveInDrawer counts the unit's records filed in drawer and not present in exclude.
func (r *ArchivePostgres) CountActiveInDrawer(ctx context.Context, unitID int64, drawer int, exclude []string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM archive_records r
		JOIN storage_locations l ON l.id = r.location_id
		WHERE r.unit_id = $1 AND l.no_laci = $2 AND r.id::text <> ALL($3::text[])
	`
	var n int
	if err := r.db.QueryRowContext(ctx, q, unitID, strconv.Itoa(drawer), excludeParam(exclude)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// StoredAddress reads the drawer and folder of a record's location.
// A record without a location yields two empty strings; a missing record yields sql.ErrNoRows.
func (r *ArchivePostgres) StoredAddress(ctx context.Context, recordID string) (string, string, error) {
	const q = `
		SELECT COALESCE(l.no_laci, ''), COALESCE(l.no_folder, '')
		FROM archive_records r
		LEFT JOIN storage_locations l ON l.id = r.location_id
		WHERE r.id = $1
	`
	var drawer, folder string
	if err := r.db.QueryRowContext(ctx, q, recordID).Scan(&drawer, &folder); err != nil {
		return "", "", err
	}
	return drawer, folder, nil
}

// ListForRenumber returns the unit's active records in renumbering order.
func (r *ArchivePostgres) ListForRenumber(ctx context.Context, unitID int64, exclude []string) ([]model.ArchiveRecord, error) {
	q := `
		SELECT ` + archiveColumns + `
		FROM archive_records r
		LEFT JOIN storage_locations l ON l.id = r.location_id
		WHERE r.unit_id = $1 AND r.id::text <> ALL($2::text[])
		ORDER BY r.file_number ASC, r.created_at ASC, r.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, unitID, excludeParam(exclude))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ArchiveRecord, 0)
	for rows.Next() {
		rec, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFileNumbers writes the new file numbers inside one transaction, in the given order.
func (r *ArchivePostgres) UpdateFileNumbers(ctx context.Context, changes []repository.FileNumberChange) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin renumber: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `UPDATE archive_records SET file_number = $2, updated_at = now() WHERE id = $1`
	for _, c := range changes {
		if _, err := tx.ExecContext(ctx, q, c.ID, c.FileNumber); err != nil {
			return fmt.Errorf("renumber %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit renumber: %w", err)
	}
	return nil
}
