// Package allocator computes the cabinet/drawer/folder address under which an
// active archive record is filed.
//
// The computation is a pure function of a handful of read queries. It never
// writes, never locks and never retries; two concurrent callers may compute the
// same address and it is up to the persistence step to deduplicate.
package allocator

import (
	"context"
	"fmt"
	"strconv"

	"archiveapi/internal/model"
)

const (
	// DefaultCapacityPerDrawer is the number of active records a drawer holds before rolling over.
	DefaultCapacityPerDrawer = 50
	// DefaultMaxDrawers is the hard ceiling on drawer numbers. Overflow piles into the last drawer.
	DefaultMaxDrawers = 4

	defaultStoredValue = "1"
)

// ExclusionSet returns the ids of records already moved to inactive storage.
type ExclusionSet interface {
	MovedRecordIDs(ctx context.Context) ([]string, error)
}

// RecordCounter counts a unit's records, skipping the excluded ids.
type RecordCounter interface {
	CountActive(ctx context.Context, unitID int64, exclude []string) (int, error)
	CountActiveInDrawer(ctx context.Context, unitID int64, drawer int, exclude []string) (int, error)
}

// AddressReader returns the drawer and folder currently stored for a record.
// Either value may be empty when the record has no complete location yet.
type AddressReader interface {
	StoredAddress(ctx context.Context, recordID string) (drawer, folder string, err error)
}

// Config is the static allocation configuration.
type Config struct {
	CapacityPerDrawer int
	MaxDrawers        int
	// Prefixes maps unit name to cabinet prefix. It is never modified by the allocator.
	Prefixes map[string]string
}

// Input carries the form values the address is derived from.
// Zero values stand for "not supplied".
type Input struct {
	UnitName   string
	UnitID     int64
	FileNumber int
	EditID     string
}

// Allocator computes storage addresses.
type Allocator struct {
	cfg      Config
	excluded ExclusionSet
	counter  RecordCounter
	reader   AddressReader
}

// New builds an Allocator. Non-positive capacity or drawer limits fall back to the defaults.
func New(cfg Config, excluded ExclusionSet, counter RecordCounter, reader AddressReader) *Allocator {
	if cfg.CapacityPerDrawer <= 0 {
		cfg.CapacityPerDrawer = DefaultCapacityPerDrawer
	}
	if cfg.MaxDrawers <= 0 {
		cfg.MaxDrawers = DefaultMaxDrawers
	}
	if cfg.Prefixes == nil {
		cfg.Prefixes = map[string]string{}
	}
	return &Allocator{cfg: cfg, excluded: excluded, counter: counter, reader: reader}
}

// Prefix resolves the cabinet prefix of a unit. It returns "" for unmapped units.
func (a *Allocator) Prefix(unitName string) string {
	if unitName == "" {
		return ""
	}
	return a.cfg.Prefixes[unitName]
}

// Allocate computes the address for a new record, or reads the frozen one of an
// edited record when in.EditID is set.
//
// An unmapped unit or a missing unit id yields the blank address without issuing
// any query. A failing query yields the blank address together with the error.
func (a *Allocator) Allocate(ctx context.Context, in Input) (model.StorageAddress, error) {
	prefix := a.Prefix(in.UnitName)
	if prefix == "" || in.UnitID == 0 {
		return model.StorageAddress{}, nil
	}

	if in.EditID != "" {
		return a.stored(ctx, prefix, in.EditID)
	}

	exclude, err := a.excluded.MovedRecordIDs(ctx)
	if err != nil {
		return model.StorageAddress{}, fmt.Errorf("load moved records: %w", err)
	}

	existing, err := a.counter.CountActive(ctx, in.UnitID, exclude)
	if err != nil {
		return model.StorageAddress{}, fmt.Errorf("count unit records: %w", err)
	}
	drawer := DrawerFor(existing, a.cfg.CapacityPerDrawer, a.cfg.MaxDrawers)

	folder := in.FileNumber
	if folder <= 0 {
		inDrawer, err := a.counter.CountActiveInDrawer(ctx, in.UnitID, drawer, exclude)
		if err != nil {
			return model.StorageAddress{}, fmt.Errorf("count drawer records: %w", err)
		}
		folder = FallbackFolder(inDrawer, drawer)
	}

	return model.StorageAddress{
		CabinetPrefix: prefix,
		DrawerNumber:  strconv.Itoa(drawer),
		FolderNumber:  strconv.Itoa(folder),
	}, nil
}

func (a *Allocator) stored(ctx context.Context, prefix, recordID string) (model.StorageAddress, error) {
	drawer, folder, err := a.reader.StoredAddress(ctx, recordID)
	if err != nil {
		return model.StorageAddress{}, fmt.Errorf("read stored address: %w", err)
	}
	if drawer == "" {
		drawer = defaultStoredValue
	}
	if folder == "" {
		folder = defaultStoredValue
	}
	return model.StorageAddress{
		CabinetPrefix: prefix,
		DrawerNumber:  drawer,
		FolderNumber:  folder,
	}, nil
}

// DrawerFor returns the drawer a record lands in given how many active records precede it.
// The drawer rolls over at every multiple of capacity and is clamped to maxDrawers.
func DrawerFor(existing, capacity, maxDrawers int) int {
	if existing < 0 {
		existing = 0
	}
	drawer := existing/capacity + 1
	if drawer > maxDrawers {
		drawer = maxDrawers
	}
	return drawer
}

// FallbackFolder is the folder number used when no file number was supplied.
// The drawer number is part of the sum; existing folders were numbered this way.
func FallbackFolder(inDrawer, drawer int) int {
	if inDrawer < 0 {
		inDrawer = 0
	}
	return inDrawer + drawer + 1
}
