package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// newArchiveApp mounts stand-ins for the archive routes behind the middleware.
func newArchiveApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Get("/locations/preview", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"cabinet_prefix": "UM", "drawer_number": "1", "folder_number": "1"})
	})
	app.Post("/archives/:id/inactive", func(c *fiber.Ctx) error {
		if c.Params("id") == "moved" {
			return fiber.NewError(fiber.StatusConflict, "already inactive")
		}
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Delete("/archives/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, promMiddleware, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, promMiddleware, _ := newArchiveApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/locations/preview?unit_id=1", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/locations/preview", "200"))
	if count != 1 {
		t.Errorf("expected count 1 for preview, got %f", count)
	}

	app.Test(httptest.NewRequest("DELETE", "/archives/4f6c", nil))

	countDelete := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("DELETE", "/archives/:id", "204"))
	if countDelete != 1 {
		t.Errorf("expected count 1 for delete, got %f", countDelete)
	}
}

func TestPrometheusMiddleware_InactiveTransferLabels(t *testing.T) {
	app, promMiddleware, _ := newArchiveApp(t)

	for _, id := range []string{"a1", "b2", "moved"} {
		app.Test(httptest.NewRequest("POST", "/archives/"+id+"/inactive", nil))
	}

	created := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("POST", "/archives/:id/inactive", "201"))
	if created != 2 {
		t.Errorf("expected 2 transfers labelled 201, got %f", created)
	}

	// fiber errors are labelled with their own code, not the 200 left on the response
	conflict := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("POST", "/archives/:id/inactive", "409"))
	if conflict != 1 {
		t.Errorf("expected 1 transfer labelled 409, got %f", conflict)
	}

	// raw ids never become label values
	if n := testutil.CollectAndCount(promMiddleware.requestCount); n != 2 {
		t.Errorf("expected 2 label sets, got %d", n)
	}
	if n := testutil.CollectAndCount(promMiddleware.requestDuration); n != 1 {
		t.Errorf("expected 1 duration series, got %d", n)
	}
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, _, reg := newArchiveApp(t)

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" && len(mf.GetMetric()) > 0 {
			t.Errorf("expected no http_requests_total series, got %d", len(mf.GetMetric()))
		}
	}
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusMiddleware(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewPrometheusMiddleware(reg); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
