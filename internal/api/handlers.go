package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/logger"
	"github.com/ducminhle1904/strategy-sim/internal/monitoring"
	"github.com/ducminhle1904/strategy-sim/internal/montecarlo"
	"github.com/ducminhle1904/strategy-sim/internal/presets"
	"github.com/ducminhle1904/strategy-sim/internal/simerr"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// maxBatchTrials caps a single Monte Carlo request.
const maxBatchTrials = 10000

// Handler handles HTTP requests.
type Handler struct {
	store  *presets.Store
	runLog *logger.Logger
	health *monitoring.HealthChecker
}

// NewHandler creates a new API handler.
func NewHandler(store *presets.Store, runLog *logger.Logger, health *monitoring.HealthChecker) *Handler {
	return &Handler{store: store, runLog: runLog, health: health}
}

// SimulateRequest is the body of POST /api/simulate. An explicit seed makes
// the run reproducible; omitted, the run draws fresh randomness.
type SimulateRequest struct {
	config.Scenario
	Seed *int64 `json:"seed,omitempty"`
}

// MonteCarloRequest is the body of POST /api/montecarlo.
type MonteCarloRequest struct {
	config.Scenario
	Trials int    `json:"trials"`
	Seed   *int64 `json:"seed,omitempty"`
}

// Health reports service health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(h.health.Snapshot())
}

// Simulate runs one simulation and returns the full summary. All derived
// percentages arrive pre-computed; the dashboard renders them as-is.
func (h *Handler) Simulate(c *fiber.Ctx) error {
	var req SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		monitoring.RecordError("bad_request")
		return badRequest(c, "invalid request body")
	}

	req.SetDefaults()
	params, err := req.ToParams()
	if err != nil {
		monitoring.RecordError("validation")
		return badRequest(c, err.Error())
	}

	src := simulator.DefaultRand()
	if req.Seed != nil {
		src = simulator.SeededRand(*req.Seed)
	}

	start := time.Now()
	summary := simulator.New(params, src).Run()
	elapsed := time.Since(start)

	monitoring.RecordSimulation("api", elapsed)
	h.health.MarkRun()
	if h.runLog != nil {
		h.runLog.LogRun("api", params, summary, elapsed)
	}

	return c.JSON(summary)
}

// MonteCarlo runs a batch of independent trials and returns the distribution
// statistics.
func (h *Handler) MonteCarlo(c *fiber.Ctx) error {
	var req MonteCarloRequest
	if err := c.BodyParser(&req); err != nil {
		monitoring.RecordError("bad_request")
		return badRequest(c, "invalid request body")
	}

	if req.Trials <= 0 || req.Trials > maxBatchTrials {
		monitoring.RecordError("validation")
		return badRequest(c, "trials must be between 1 and 10000")
	}

	req.SetDefaults()
	params, err := req.ToParams()
	if err != nil {
		monitoring.RecordError("validation")
		return badRequest(c, err.Error())
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	start := time.Now()
	stats := montecarlo.RunBatch(params, req.Trials, seed)
	elapsed := time.Since(start)

	monitoring.RecordBatch(req.Trials, elapsed)
	h.health.MarkRun()
	if h.runLog != nil {
		h.runLog.LogBatch("api", params, stats, elapsed)
	}

	return c.JSON(stats)
}

// ListPresets returns all named configurations, oldest first.
func (h *Handler) ListPresets(c *fiber.Ctx) error {
	monitoring.RecordPresetOp("list")
	return c.JSON(h.store.List())
}

// GetPreset returns one named configuration.
func (h *Handler) GetPreset(c *fiber.Ctx) error {
	name := c.Params("name")
	p, ok := h.store.Get(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no preset named " + name,
		})
	}
	monitoring.RecordPresetOp("get")
	return c.JSON(p)
}

// SavePreset stores the posted scenario under its name.
func (h *Handler) SavePreset(c *fiber.Ctx) error {
	var sc config.Scenario
	if err := c.BodyParser(&sc); err != nil {
		return badRequest(c, "invalid request body")
	}
	sc.SetDefaults()

	p, err := h.store.Save(sc.Name, sc)
	if err != nil {
		if simerr.IsValidation(err) {
			return badRequest(c, err.Error())
		}
		monitoring.RecordError("storage")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	monitoring.RecordPresetOp("save")
	return c.Status(fiber.StatusCreated).JSON(p)
}

// DeletePreset removes a named configuration.
func (h *Handler) DeletePreset(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("name")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	monitoring.RecordPresetOp("delete")
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
