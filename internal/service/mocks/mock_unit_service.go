package mocks

import (
	"context"

	"archiveapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) List(ctx context.Context) ([]model.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Unit), args.Error(1)
}

func (m *MockUnitService) Get(ctx context.Context, id int64) (*model.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}
