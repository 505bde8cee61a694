package mocks

import (
	"context"

	"archiveapi/internal/model"
	"archiveapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) PreviewLocation(ctx context.Context, unitID int64, fileNumber int, editID string) (model.StorageAddress, error) {
	args := m.Called(ctx, unitID, fileNumber, editID)
	return args.Get(0).(model.StorageAddress), args.Error(1)
}

func (m *MockArchiveService) Create(ctx context.Context, in service.ArchiveInput) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveService) Update(ctx context.Context, id string, in service.ArchiveInput) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveService) Get(ctx context.Context, id string) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveService) List(ctx context.Context, unitID int64, limit, offset int) (*service.ArchiveListResult, error) {
	args := m.Called(ctx, unitID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveListResult), args.Error(1)
}

func (m *MockArchiveService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArchiveService) MoveToInactive(ctx context.Context, id, note string) (*model.InactiveTransfer, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InactiveTransfer), args.Error(1)
}

func (m *MockArchiveService) Renumber(ctx context.Context, unitID int64) (int, error) {
	args := m.Called(ctx, unitID)
	return args.Int(0), args.Error(1)
}
