package repository

import (
	"context"

	"archiveapi/internal/model"
)

// UnitRepository reads organizational units.
type UnitRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
}
