package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(assignments.WithLabelValues("created"))
	IncAssignment("created")
	assert.Equal(t, before+1, testutil.ToFloat64(assignments.WithLabelValues("created")))

	before = testutil.ToFloat64(removals)
	IncRemoval()
	assert.Equal(t, before+1, testutil.ToFloat64(removals))
}

func TestHandler(t *testing.T) {
	Register()
	IncWeekCache("hit")

	app := fiber.New()
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "resto_schedule_week_cache_total")
}
