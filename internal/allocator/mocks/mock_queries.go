package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockExclusionSet struct {
	mock.Mock
}

func (m *MockExclusionSet) MovedRecordIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockRecordCounter struct {
	mock.Mock
}

func (m *MockRecordCounter) CountActive(ctx context.Context, unitID int64, exclude []string) (int, error) {
	args := m.Called(ctx, unitID, exclude)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordCounter) CountActiveInDrawer(ctx context.Context, unitID int64, drawer int, exclude []string) (int, error) {
	args := m.Called(ctx, unitID, drawer, exclude)
	return args.Int(0), args.Error(1)
}

type MockAddressReader struct {
	mock.Mock
}

func (m *MockAddressReader) StoredAddress(ctx context.Context, recordID string) (string, string, error) {
	args := m.Called(ctx, recordID)
	return args.String(0), args.String(1), args.Error(2)
}
