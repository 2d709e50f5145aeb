package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"autocomply/internal/platform/middleware"
	"autocomply/internal/regulatory"
	dErrors "autocomply/pkg/domain-errors"
	"autocomply/pkg/platform/httputil"
)

// Service defines the interface for regulatory search operations.
type Service interface {
	Search(ctx context.Context, query string, opts regulatory.SearchOptions) []regulatory.ScoredSource
	Preview(ctx context.Context, query string, jurisdiction string) *regulatory.Source
}

// Handler wires regulatory search endpoints to the search service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a regulatory search handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts regulatory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/rag/regulatory/search", h.HandleSearch)
	r.Get("/rag/regulatory/preview", h.HandlePreview)
}

// HandleSearch handles POST /rag/regulatory/search requests.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SearchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results := h.service.Search(ctx, req.Query, regulatory.SearchOptions{
		Jurisdiction: req.Jurisdiction,
		Tags:         req.Tags,
		TopK:         req.Limit,
	})

	httputil.WriteJSON(w, http.StatusOK, FromScoredSources(results))
}

// HandlePreview handles GET /rag/regulatory/preview requests. No match is a
// valid empty response, not an error.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "query is required"))
		return
	}
	jurisdiction := strings.TrimSpace(r.URL.Query().Get("jurisdiction"))

	source := h.service.Preview(ctx, query, jurisdiction)
	if source == nil {
		httputil.WriteJSON(w, http.StatusOK, PreviewResponse{Found: false})
		return
	}

	result := FromSource(*source)
	httputil.WriteJSON(w, http.StatusOK, PreviewResponse{Found: true, Result: &result})
}
