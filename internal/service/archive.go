package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archiveapi/internal/allocator"
	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// ArchiveInput carries the editable fields of an archive record.
// FileNumber <= 0 means the user left it empty.
type ArchiveInput struct {
	UnitID             int64  `json:"unit_id"`
	ClassificationCode string `json:"classification_code"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	FileNumber         int    `json:"file_number"`
}

// ArchiveListResult is the service-level DTO for paginated archive records.
type ArchiveListResult struct {
	Items []model.ArchiveRecord `json:"data"`
	Total int                   `json:"total"`
}

// LocationAllocator computes the storage address of a record.
type LocationAllocator interface {
	Allocate(ctx context.Context, in allocator.Input) (model.StorageAddress, error)
}

// ArchiveService defines the use cases for filing active archive records.
type ArchiveService interface {
	// PreviewLocation computes the address a record would get, without writing anything.
	// It returns the blank address when the unit cannot be allocated yet.
	PreviewLocation(ctx context.Context, unitID int64, fileNumber int, editID string) (model.StorageAddress, error)

	// Create files a new record under a freshly allocated location.
	Create(ctx context.Context, in ArchiveInput) (*model.ArchiveRecord, error)

	// Update edits a record. Its drawer and folder stay where they were filed.
	Update(ctx context.Context, id string, in ArchiveInput) (*model.ArchiveRecord, error)

	// Get returns a single record by its ID.
	Get(ctx context.Context, id string) (*model.ArchiveRecord, error)

	// List returns records using limit/offset and a total count. A zero unitID lists all units.
	List(ctx context.Context, unitID int64, limit, offset int) (*ArchiveListResult, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// MoveToInactive links the record to inactive storage so it stops counting toward drawer capacity.
	MoveToInactive(ctx context.Context, id, note string) (*model.InactiveTransfer, error)

	// Renumber rewrites the file numbers of a unit's active records to 1..n and returns how many changed.
	Renumber(ctx context.Context, unitID int64) (int, error)
}

// archiveService is a concrete implementation of ArchiveService.
type archiveService struct {
	alloc     LocationAllocator
	units     UnitService
	archives  repository.ArchiveRepository
	locations repository.LocationRepository
	inactive  repository.InactiveRepository
	log       *zap.Logger
	now       func() time.Time
}

// NewArchiveService constructs a new ArchiveService.
func NewArchiveService(
	alloc LocationAllocator,
	units UnitService,
	archives repository.ArchiveRepository,
	locations repository.LocationRepository,
	inactive repository.InactiveRepository,
	log *zap.Logger,
) ArchiveService {
	if log == nil {
		log = zap.NewNop()
	}
	return &archiveService{
		alloc:     alloc,
		units:     units,
		archives:  archives,
		locations: locations,
		inactive:  inactive,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateInput(in ArchiveInput) error {
	if in.UnitID <= 0 {
		return &ValidationError{Field: "unit_id", Message: "is required"}
	}
	if strings.TrimSpace(in.ClassificationCode) == "" {
		return &ValidationError{Field: "classification_code", Message: "is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	return nil
}

// allocate runs the allocator and records the outcome.
func (s *archiveService) allocate(ctx context.Context, in allocator.Input) (model.StorageAddress, error) {
	mode := modeCreate
	if in.EditID != "" {
		mode = modeEdit
	}

	addr, err := s.alloc.Allocate(ctx, in)
	switch {
	case err != nil:
		allocationsTotal.WithLabelValues(mode, outcomeError).Inc()
		s.log.Warn("location allocation failed",
			zap.Int64("unit_id", in.UnitID),
			zap.String("mode", mode),
			zap.Error(err),
		)
		return model.StorageAddress{}, err
	case addr.IsBlank():
		allocationsTotal.WithLabelValues(mode, outcomeBlank).Inc()
	default:
		allocationsTotal.WithLabelValues(mode, outcomeAllocated).Inc()
	}
	return addr, nil
}

func (s *archiveService) PreviewLocation(ctx context.Context, unitID int64, fileNumber int, editID string) (model.StorageAddress, error) {
	if unitID <= 0 {
		return model.StorageAddress{}, nil
	}
	unit, err := s.units.Get(ctx, unitID)
	if err != nil {
		if errors.Is(err, ErrUnitNotFound) {
			return model.StorageAddress{}, nil
		}
		return model.StorageAddress{}, err
	}
	addr, err := s.allocate(ctx, allocator.Input{
		UnitName:   unit.Name,
		UnitID:     unit.ID,
		FileNumber: fileNumber,
		EditID:     editID,
	})
	if err != nil && editID != "" && errors.Is(err, sql.ErrNoRows) {
		return model.StorageAddress{}, ErrNotFound
	}
	return addr, err
}

// filedLocation allocates an address and resolves it to a persisted location row.
func (s *archiveService) filedLocation(ctx context.Context, unit *model.Unit, fileNumber int, editID string) (*model.StorageLocation, error) {
	addr, err := s.allocate(ctx, allocator.Input{
		UnitName:   unit.Name,
		UnitID:     unit.ID,
		FileNumber: fileNumber,
		EditID:     editID,
	})
	if err != nil {
		return nil, fmt.Errorf("allocate location: %w", err)
	}
	if addr.IsBlank() {
		return nil, ErrLocationUnavailable
	}

	loc, err := s.locations.FindOrCreate(ctx, unit.ID, addr)
	if err != nil {
		return nil, fmt.Errorf("save location: %w", err)
	}
	return loc, nil
}

func (s *archiveService) Create(ctx context.Context, in ArchiveInput) (*model.ArchiveRecord, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	unit, err := s.units.Get(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}

	fileNumber := in.FileNumber
	if fileNumber <= 0 {
		fileNumber, err = s.archives.NextFileNumber(ctx, unit.ID)
		if err != nil {
			return nil, fmt.Errorf("next file number: %w", err)
		}
	}

	// The allocator sees the raw input: an empty file number selects drawer sequencing for the folder.
	loc, err := s.filedLocation(ctx, unit, in.FileNumber, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := &model.ArchiveRecord{
		ID:                 uuid.New().String(),
		UnitID:             unit.ID,
		ClassificationCode: strings.TrimSpace(in.ClassificationCode),
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		FileNumber:         fileNumber,
		LocationID:         &loc.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	stored, err := s.archives.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.log.Info("archive record filed",
		zap.String("id", stored.ID),
		zap.Int64("unit_id", unit.ID),
		zap.Int("file_number", fileNumber),
		zap.String("cabinet", loc.CabinetPrefix),
		zap.String("drawer", loc.DrawerNumber),
		zap.String("folder", loc.FolderNumber),
	)
	return stored, nil
}

func (s *archiveService) Update(ctx context.Context, id string, in ArchiveInput) (*model.ArchiveRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.archives.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	unit, err := s.units.Get(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}

	loc, err := s.filedLocation(ctx, unit, in.FileNumber, id)
	if err != nil {
		return nil, err
	}

	fileNumber := existing.FileNumber
	if in.FileNumber > 0 {
		fileNumber = in.FileNumber
	}

	rec := &model.ArchiveRecord{
		ID:                 id,
		UnitID:             unit.ID,
		ClassificationCode: strings.TrimSpace(in.ClassificationCode),
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		FileNumber:         fileNumber,
		LocationID:         &loc.ID,
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          s.now(),
	}
	stored, err := s.archives.Update(ctx, rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// Get returns a record by ID.
func (s *archiveService) Get(ctx context.Context, id string) (*model.ArchiveRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.archives.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// List returns paginated records without exposing repository types.
func (s *archiveService) List(ctx context.Context, unitID int64, limit, offset int) (*ArchiveListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	if unitID < 0 {
		unitID = 0
	}

	res, err := s.archives.List(ctx, repository.ArchiveFilter{
		UnitID:    unitID,
		PageQuery: repository.PageQuery{Limit: limit, Offset: offset},
	})
	if err != nil {
		return nil, err
	}
	return &ArchiveListResult{Items: res.Items, Total: res.Total}, nil
}

// Delete removes a record. Its location row stays, other records may share it.
func (s *archiveService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.archives.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.archives.Delete(ctx, id)
}

func (s *archiveService) MoveToInactive(ctx context.Context, id, note string) (*model.InactiveTransfer, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.archives.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	moved, err := s.inactive.ExistsForRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if moved {
		return nil, ErrAlreadyInactive
	}

	t, err := s.inactive.Create(ctx, &model.InactiveTransfer{
		ArchiveRecordID: id,
		Note:            strings.TrimSpace(note),
		MovedAt:         s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save transfer: %w", err)
	}
	s.log.Info("archive record moved to inactive storage", zap.String("id", id))
	return t, nil
}

func (s *archiveService) Renumber(ctx context.Context, unitID int64) (int, error) {
	if unitID <= 0 {
		return 0, &ValidationError{Field: "unit_id", Message: "is required"}
	}

	moved, err := s.inactive.MovedRecordIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("load moved records: %w", err)
	}
	recs, err := s.archives.ListForRenumber(ctx, unitID, moved)
	if err != nil {
		return 0, fmt.Errorf("list records: %w", err)
	}

	changes := make([]repository.FileNumberChange, 0)
	for i, rec := range recs {
		if want := i + 1; rec.FileNumber != want {
			changes = append(changes, repository.FileNumberChange{ID: rec.ID, FileNumber: want})
		}
	}
	if len(changes) == 0 {
		return 0, nil
	}

	if err := s.archives.UpdateFileNumbers(ctx, changes); err != nil {
		return 0, err
	}
	renumberedTotal.Add(float64(len(changes)))
	s.log.Info("unit renumbered",
		zap.Int64("unit_id", unitID),
		zap.Int("records", len(recs)),
		zap.Int("changed", len(changes)),
	)
	return len(changes), nil
}
