package repository

import (
	"context"

	"archiveapi/internal/model"
)

// ArchiveFilter narrows archive listings. A zero UnitID lists every unit.
type ArchiveFilter struct {
	UnitID int64
	PageQuery
}

// ArchiveRepository defines data access for active archive records using SQL queries only.
// No business logic here, strictly persistence operations.
type ArchiveRepository interface {
	// Create inserts a new archive record and returns the stored row.
	Create(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error)

	// Update rewrites the editable fields of a record. It returns sql.ErrNoRows when the record does not exist.
	Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error)

	// FindByID returns a record with its location, if any.
	FindByID(ctx context.Context, id string) (*model.ArchiveRecord, error)

	// List returns a paginated list of records and the total count for the filter.
	List(ctx context.Context, f ArchiveFilter) (*PageResult[model.ArchiveRecord], error)

	// Delete removes a record by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// NextFileNumber returns one past the highest file number used in the unit.
	NextFileNumber(ctx context.Context, unitID int64) (int, error)

	// CountActive counts the unit's records whose id is not in exclude.
	CountActive(ctx context.Context, unitID int64, exclude []string) (int, error)

	// CountActiveInDrawer counts the unit's records filed in the given drawer whose id is not in exclude.
	CountActiveInDrawer(ctx context.Context, unitID int64, drawer int, exclude []string) (int, error)

	// StoredAddress returns the drawer and folder of the record's current location.
	// Both are empty when the record has no location.
	StoredAddress(ctx context.Context, recordID string) (drawer, folder string, err error)

	// ListForRenumber returns the unit's records not in exclude, ordered by
	// file number, then creation time, then id.
	ListForRenumber(ctx context.Context, unitID int64, exclude []string) ([]model.ArchiveRecord, error)

	// UpdateFileNumbers applies the file number changes in a single transaction.
	UpdateFileNumbers(ctx context.Context, changes []FileNumberChange) error
}

// FileNumberChange assigns a new file number to a record.
type FileNumberChange struct {
	ID         string
	FileNumber int
}
