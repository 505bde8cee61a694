package repository

import (
	"context"

	"archiveapi/internal/model"
)

// InactiveRepository stores the moved-to-inactive links.
type InactiveRepository interface {
	// MovedRecordIDs returns the ids of every record linked to an inactive transfer.
	MovedRecordIDs(ctx context.Context) ([]string, error)

	// Create links a record to an inactive transfer.
	Create(ctx context.Context, t *model.InactiveTransfer) (*model.InactiveTransfer, error)

	// ExistsForRecord reports whether the record has already been moved.
	ExistsForRecord(ctx context.Context, recordID string) (bool, error)
}
