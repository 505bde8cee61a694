package model

// StorageAddress is the three-part physical address of an archive record.
// Drawer and folder are kept as text because that is how the location table stores them.
// The zero value is the blank address, meaning "cannot allocate yet".
type StorageAddress struct {
	CabinetPrefix string `json:"cabinet_prefix"`
	DrawerNumber  string `json:"drawer_number"`
	FolderNumber  string `json:"folder_number"`
}

// IsBlank reports whether no address could be determined.
func (a StorageAddress) IsBlank() bool {
	return a.CabinetPrefix == "" && a.DrawerNumber == "" && a.FolderNumber == ""
}

// StorageLocation is a persisted address row, keyed naturally by
// (UnitID, CabinetPrefix, DrawerNumber, FolderNumber).
type StorageLocation struct {
	ID     int64 `json:"id"`
	UnitID int64 `json:"unit_id"`
	StorageAddress
}
