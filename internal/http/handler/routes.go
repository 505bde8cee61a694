package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"archiveapi/internal/service"
)

// Services groups what the routes depend on.
type Services struct {
	DB       *sql.DB
	Archives service.ArchiveService
	Units    service.UnitService
	Renumber RenumberScheduler
	// Gatherer backs /metrics. Nil means the default prometheus registry.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, s Services) {
	gatherer := s.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	app.Get("/health", HealthCheck(s.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Get("/units", ListUnits(s.Units))
	app.Post("/units/:id/renumber", RenumberUnit(s.Units, s.Renumber))

	app.Get("/locations/preview", PreviewLocation(s.Archives))

	app.Get("/archives", ListArchives(s.Archives))
	app.Post("/archives", CreateArchive(s.Archives))
	app.Get("/archives/:id", GetArchive(s.Archives))
	app.Put("/archives/:id", UpdateArchive(s.Archives))
	app.Delete("/archives/:id", DeleteArchive(s.Archives))
	app.Post("/archives/:id/inactive", MoveToInactive(s.Archives))
}
