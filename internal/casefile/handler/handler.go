package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"autocomply/internal/casefile"
	"autocomply/internal/platform/middleware"
	dErrors "autocomply/pkg/domain-errors"
	"autocomply/pkg/platform/httputil"
)

// Service defines the interface for case aggregation.
type Service interface {
	Summarize(ctx context.Context, traceID string) (*casefile.Summary, error)
}

// Handler wires case summary endpoints to the aggregator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a case handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts case endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cases/{trace_id}", h.HandleSummary)
}

// HandleSummary handles GET /cases/{trace_id} requests. A trace with no
// recorded decisions returns an empty-but-valid summary, not a 404.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	traceID := strings.TrimSpace(chi.URLParam(r, "trace_id"))
	if traceID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "trace_id is required"))
		return
	}

	summary, err := h.service.Summarize(ctx, traceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "case summary failed",
			"request_id", requestID,
			"trace_id", traceID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "case summarized",
		"request_id", requestID,
		"trace_id", traceID,
		"decisions", len(summary.Decisions),
		"overall_status", summary.OverallStatus,
	)

	httputil.WriteJSON(w, http.StatusOK, summary)
}
