package model

import "time"

// Unit is an organizational unit that owns archive records.
type Unit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArchiveRecord is an active archive file filed under a physical storage location.
// LocationID is nil until an address has been assigned.
type ArchiveRecord struct {
	ID                 string           `json:"id"`
	UnitID             int64            `json:"unit_id"`
	ClassificationCode string           `json:"classification_code"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	FileNumber         int              `json:"file_number"`
	LocationID         *int64           `json:"location_id,omitempty"`
	Location           *StorageLocation `json:"location,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// InactiveTransfer links an active record to its move into inactive storage.
// A record has at most one transfer.
type InactiveTransfer struct {
	ID              int64     `json:"id"`
	ArchiveRecordID string    `json:"archive_record_id"`
	Note            string    `json:"note,omitempty"`
	MovedAt         time.Time `json:"moved_at"`
}
