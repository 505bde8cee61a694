package mocks

import (
	"context"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Create(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) FindByID(ctx context.Context, id string) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) List(ctx context.Context, f repository.ArchiveFilter) (*repository.PageResult[model.ArchiveRecord], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ArchiveRecord]), args.Error(1)
}

func (m *MockArchiveRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArchiveRepository) NextFileNumber(ctx context.Context, unitID int64) (int, error) {
	args := m.Called(ctx, unitID)
	return args.Int(0), args.Error(1)
}

func (m *MockArchiveRepository) CountActive(ctx context.Context, unitID int64, exclude []string) (int, error) {
	args := m.Called(ctx, unitID, exclude)
	return args.Int(0), args.Error(1)
}

func (m *MockArchiveRepository) CountActiveInDrawer(ctx context.Context, unitID int64, drawer int, exclude []string) (int, error) {
	args := m.Called(ctx, unitID, drawer, exclude)
	return args.Int(0), args.Error(1)
}

func (m *MockArchiveRepository) StoredAddress(ctx context.Context, recordID string) (string, string, error) {
	args := m.Called(ctx, recordID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockArchiveRepository) ListForRenumber(ctx context.Context, unitID int64, exclude []string) ([]model.ArchiveRecord, error) {
	args := m.Called(ctx, unitID, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) UpdateFileNumbers(ctx context.Context, changes []repository.FileNumberChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}
