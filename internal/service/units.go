package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"archiveapi/internal/model"
	"archiveapi/internal/repository"
)

// UnitService exposes the organizational units archive records are filed under.
type UnitService interface {
	// List returns every unit ordered by name.
	List(ctx context.Context) ([]model.Unit, error)

	// Get returns a unit by id, or ErrUnitNotFound.
	Get(ctx context.Context, id int64) (*model.Unit, error)
}

// unitService serves unit lookups through an expirable LRU cache.
// Units change rarely and every allocation needs the unit name.
type unitService struct {
	repo  repository.UnitRepository
	cache *expirable.LRU[int64, *model.Unit]
}

// NewUnitService builds a UnitService whose cache holds at most size entries for ttl each.
func NewUnitService(repo repository.UnitRepository, size int, ttl time.Duration) UnitService {
	if size <= 0 {
		size = 256
	}
	return &unitService{
		repo:  repo,
		cache: expirable.NewLRU[int64, *model.Unit](size, nil, ttl),
	}
}

func (s *unitService) List(ctx context.Context) ([]model.Unit, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range units {
		u := units[i]
		s.cache.Add(u.ID, &u)
	}
	return units, nil
}

func (s *unitService) Get(ctx context.Context, id int64) (*model.Unit, error) {
	if id <= 0 {
		return nil, ErrUnitNotFound
	}
	if u, ok := s.cache.Get(id); ok {
		unitCacheHitsTotal.Inc()
		return u, nil
	}
	unitCacheMissesTotal.Inc()

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	s.cache.Add(id, u)
	return u, nil
}
