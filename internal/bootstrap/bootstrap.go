// Package bootstrap wires the archive domain for the API, the worker and the CLI.
package bootstrap

import (
	"database/sql"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"archiveapi/internal/allocator"
	"archiveapi/internal/config"
	"archiveapi/internal/repository/postgres"
	"archiveapi/internal/service"
)

// Services is the wired archive domain.
type Services struct {
	Archives service.ArchiveService
	Units    service.UnitService
}

// NewServices builds the repositories, the allocator and the services over db.
func NewServices(db *sql.DB, cfg *config.AppConfig, log *zap.Logger) Services {
	archiveRepo := postgres.NewArchivePostgres(db)
	locationRepo := postgres.NewLocationPostgres(db)
	inactiveRepo := postgres.NewInactivePostgres(db)
	unitRepo := postgres.NewUnitPostgres(db)

	alloc := allocator.New(allocator.Config{
		CapacityPerDrawer: cfg.Allocation.CapacityPerDrawer,
		MaxDrawers:        cfg.Allocation.MaxDrawers,
		Prefixes:          cfg.Allocation.Prefixes,
	}, inactiveRepo, archiveRepo, archiveRepo)

	units := service.NewUnitService(unitRepo, cfg.Cache.UnitCacheSize, cfg.Cache.UnitCacheTTL)
	archives := service.NewArchiveService(alloc, units, archiveRepo, locationRepo, inactiveRepo, log)

	return Services{Archives: archives, Units: units}
}

// Location resolves the configured timezone, falling back to UTC.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RedisOpt converts the redis settings for asynq.
func RedisOpt(c config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}
