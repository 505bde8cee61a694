package mocks

import (
	"context"

	"archiveapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindOrCreate(ctx context.Context, unitID int64, addr model.StorageAddress) (*model.StorageLocation, error) {
	args := m.Called(ctx, unitID, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}
