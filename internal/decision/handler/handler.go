package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"autocomply/internal/decision"
	"autocomply/internal/platform/middleware"
	"autocomply/pkg/platform/httputil"
)

// Service defines the interface for decision operations.
type Service interface {
	Evaluate(ctx context.Context, req decision.EvaluateRequest) (*decision.Outcome, error)
}

// Handler wires decision endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/decision/evaluate", h.HandleEvaluate)
}

// HandleEvaluate handles POST /decision/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome, err := h.service.Evaluate(ctx, decision.EvaluateRequest{
		Family:  req.ParsedFamily(),
		Payload: decision.Payload(req.Payload),
		TraceID: req.TraceID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "decision evaluation failed",
			"request_id", requestID,
			"family", req.Family,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "decision evaluated",
		"request_id", requestID,
		"family", req.Family,
		"trace_id", outcome.TraceID,
		"status", outcome.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromOutcome(outcome))
}
