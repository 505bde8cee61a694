package repository

import (
	"context"

	"archiveapi/internal/model"
)

// LocationRepository persists storage location rows.
type LocationRepository interface {
	// FindOrCreate returns the location row matching (unitID, addr), inserting it when absent.
	FindOrCreate(ctx context.Context, unitID int64, addr model.StorageAddress) (*model.StorageLocation, error)
}
