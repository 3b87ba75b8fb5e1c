package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/monitoring"
	"github.com/ducminhle1904/strategy-sim/internal/presets"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

func testServer(t *testing.T) *fiber.App {
	t.Helper()

	store, err := presets.NewStore(filepath.Join(t.TempDir(), "presets.json"))
	require.NoError(t, err)

	cfg := config.LoadServer()
	srv := NewServer(cfg, store, nil, monitoring.NewHealthChecker())
	return srv.App()
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func simulateBody() map[string]any {
	return map[string]any{
		"win_rate":        100,
		"trades_per_day":  1,
		"risk_per_trade":  100,
		"risk_reward":     2,
		"starting_equity": 1000,
		"start_date":      "2025-01-01",
		"end_date":        "2025-01-10",
		"seed":            1,
	}
}

// TestSimulate_KnownScenario tests the certain-win scenario end to end
func TestSimulate_KnownScenario(t *testing.T) {
	app := testServer(t)

	resp := postJSON(t, app, "/api/simulate", simulateBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary simulator.SimulationSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))

	assert.Equal(t, 2600.0, summary.FinalEquity)
	assert.Equal(t, 8, summary.MaxWinStreak.Length)
	assert.Len(t, summary.EquityCurve, 9)
}

// TestSimulate_RejectsInvalidRange tests boundary validation before the engine runs
func TestSimulate_RejectsInvalidRange(t *testing.T) {
	app := testServer(t)

	body := simulateBody()
	body["start_date"] = "2025-06-01"
	body["end_date"] = "2025-01-01"

	resp := postJSON(t, app, "/api/simulate", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestSimulate_RejectsBadWinRate tests win-rate range validation
func TestSimulate_RejectsBadWinRate(t *testing.T) {
	app := testServer(t)

	body := simulateBody()
	body["win_rate"] = 250

	resp := postJSON(t, app, "/api/simulate", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestMonteCarlo_ReturnsDistribution tests the batch endpoint
func TestMonteCarlo_ReturnsDistribution(t *testing.T) {
	app := testServer(t)

	body := simulateBody()
	body["win_rate"] = 50
	body["trials"] = 20

	resp := postJSON(t, app, "/api/montecarlo", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.EqualValues(t, 20, stats["trials"])
}

// TestMonteCarlo_RejectsTrialBounds tests trial-count validation
func TestMonteCarlo_RejectsTrialBounds(t *testing.T) {
	app := testServer(t)

	body := simulateBody()
	body["trials"] = 0
	resp := postJSON(t, app, "/api/montecarlo", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body["trials"] = 50000
	resp = postJSON(t, app, "/api/montecarlo", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestPresets_CRUD tests the named-configuration lifecycle over HTTP
func TestPresets_CRUD(t *testing.T) {
	app := testServer(t)

	sc := simulateBody()
	delete(sc, "seed")
	sc["name"] = "swing"

	resp := postJSON(t, app, "/api/presets", sc)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/presets/swing", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"swing"`)
	assert.Contains(t, string(body), "created_at")

	req = httptest.NewRequest(http.MethodDelete, "/api/presets/swing", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/presets/swing", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestPresets_RejectsUnnamed tests that a preset requires a name
func TestPresets_RejectsUnnamed(t *testing.T) {
	app := testServer(t)

	sc := simulateBody()
	delete(sc, "seed")

	resp := postJSON(t, app, "/api/presets", sc)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestUnknownRoute tests the JSON 404 fallback
func TestUnknownRoute(t *testing.T) {
	app := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
