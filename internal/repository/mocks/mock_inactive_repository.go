package mocks

import (
	"context"

	"archiveapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockInactiveRepository struct {
	mock.Mock
}

func (m *MockInactiveRepository) MovedRecordIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInactiveRepository) Create(ctx context.Context, t *model.InactiveTransfer) (*model.InactiveTransfer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InactiveTransfer), args.Error(1)
}

func (m *MockInactiveRepository) ExistsForRecord(ctx context.Context, recordID string) (bool, error) {
	args := m.Called(ctx, recordID)
	return args.Bool(0), args.Error(1)
}
