package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"archiveapi/internal/model"
	repoMocks "archiveapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitService_GetCachesLookups(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockUnitRepository)
	repo.On("FindByID", ctx, int64(1)).Return(&model.Unit{ID: 1, Name: "Bagian Umum"}, nil).Once()

	svc := NewUnitService(repo, 4, time.Minute)

	for i := 0; i < 3; i++ {
		u, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Bagian Umum", u.Name)
	}
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestUnitService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockUnitRepository)
	repo.On("FindByID", ctx, int64(5)).Return(nil, sql.ErrNoRows)

	svc := NewUnitService(repo, 4, time.Minute)

	_, err := svc.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrUnitNotFound)

	_, err = svc.Get(ctx, 0)
	assert.ErrorIs(t, err, ErrUnitNotFound)
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestUnitService_GetError(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockUnitRepository)
	repo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("db down"))

	_, err := NewUnitService(repo, 4, time.Minute).Get(ctx, 1)

	assert.EqualError(t, err, "db down")
}

func TestUnitService_ListWarmsCache(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockUnitRepository)
	repo.On("List", ctx).Return([]model.Unit{{ID: 1, Name: "Bagian Umum"}, {ID: 2, Name: "Hukum"}}, nil)

	svc := NewUnitService(repo, 4, time.Minute)

	units, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 2)

	u, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Hukum", u.Name)
	repo.AssertNotCalled(t, "FindByID", ctx, int64(2))
}
