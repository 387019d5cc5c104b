package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/salariedindividual/retirement-calculator/internal/calculation"
	"github.com/salariedindividual/retirement-calculator/internal/config"
	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// Calculation outcomes reported in response metadata.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CalculationMetadata describes a single planning run.
type CalculationMetadata struct {
	CalculationID string `json:"calculation_id"`
	StartedAt     string `json:"calculation_started_at"`
	CompletedAt   string `json:"calculation_completed_at"`
	DurationMs    int64  `json:"calculation_duration_ms"`
	Outcome       string `json:"calculation_outcome"`
}

// PlanResponse is the body returned by the plan endpoint.
type PlanResponse struct {
	Metadata   CalculationMetadata    `json:"calculation_metadata"`
	Comparison *domain.PlanComparison `json:"comparison,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// TierInfo describes one supported city tier and its baseline expenses.
type TierInfo struct {
	Tier     int                   `json:"tier"`
	Label    string                `json:"label"`
	Baseline domain.ExpenseProfile `json:"monthly_baseline"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler serves the planning API over fasthttp.
type Handler struct {
	engine *calculation.PlanningEngine
	parser *config.InputParser
	log    calculation.Logger
}

// New creates a Handler with a ready planning engine.
func New() *Handler {
	return &Handler{
		engine: calculation.NewPlanningEngine(),
		parser: config.NewInputParser(),
		log:    calculation.NopLogger{},
	}
}

// SetLogger installs a logger on the handler and its engine.
func (h *Handler) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	h.log = l
	h.engine.SetLogger(l)
}

// Route dispatches an incoming request to the matching endpoint.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		h.handleHealth(ctx)
	case "/api/v1/plan":
		h.handlePlan(ctx)
	case "/api/v1/tiers":
		h.handleTiers(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// Serve blocks, listening for API requests on addr.
func (h *Handler) Serve(addr string) error {
	h.log.Infof("planning API listening on %s", addr)
	return fasthttp.ListenAndServe(addr, h.Route)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) handleTiers(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	tiers := make([]TierInfo, 0, len(domain.Tiers()))
	for _, tier := range domain.Tiers() {
		baseline, err := calculation.BaselineExpenses(tier)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
			return
		}
		tiers = append(tiers, TierInfo{Tier: int(tier), Label: tier.Label(), Baseline: baseline})
	}
	writeJSON(ctx, fasthttp.StatusOK, tiers)
}

func (h *Handler) handlePlan(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	started := time.Now().UTC()
	var cfg domain.Configuration
	if err := json.Unmarshal(ctx.PostBody(), &cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.parser.ApplyDefaults(&cfg)
	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	comparison, err := h.engine.RunScenarios(ctx, &cfg)
	resp := PlanResponse{Metadata: buildMetadata(started)}
	if err != nil {
		h.log.Warnf("plan calculation failed: %v", err)
		resp.Metadata.Outcome = OutcomeFailure
		resp.Error = err.Error()
		writeJSON(ctx, fasthttp.StatusBadRequest, resp)
		return
	}
	h.log.Infof("plan calculated for %d scenarios in %dms", len(comparison.Scenarios), resp.Metadata.DurationMs)
	resp.Comparison = comparison
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func buildMetadata(started time.Time) CalculationMetadata {
	completed := time.Now().UTC()
	return CalculationMetadata{
		CalculationID: uuid.New().String(),
		StartedAt:     started.Format(time.RFC3339),
		CompletedAt:   completed.Format(time.RFC3339),
		DurationMs:    completed.Sub(started).Milliseconds(),
		Outcome:       OutcomeSuccess,
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}
