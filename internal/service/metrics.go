package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeCreate = "create"
	modeEdit   = "edit"

	outcomeAllocated = "allocated"
	outcomeBlank     = "blank"
	outcomeError     = "error"
)

var (
	allocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archive_location_allocations_total",
			Help: "Storage location computations by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	renumberedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archive_records_renumbered_total",
		Help: "Archive records whose file number was rewritten by renumbering.",
	})

	unitCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archive_unit_cache_hits_total",
		Help: "Unit lookups served from the in-memory cache.",
	})
	unitCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archive_unit_cache_misses_total",
		Help: "Unit lookups that went to the database.",
	})
)
