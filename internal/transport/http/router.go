// Package httptransport assembles the HTTP surface. It should delegate to
// domain services without embedding business logic so transport concerns
// remain isolated.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	casehandler "autocomply/internal/casefile/handler"
	decisionhandler "autocomply/internal/decision/handler"
	"autocomply/internal/platform/middleware"
	reghandler "autocomply/internal/regulatory/handler"
	"autocomply/pkg/platform/httputil"
)

// Handlers groups the module handlers mounted on the router.
type Handlers struct {
	Decision   *decisionhandler.Handler
	Case       *casehandler.Handler
	Regulatory *reghandler.Handler
}

// NewRouter wires all public endpoints behind the shared middleware stack.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ContentTypeJSON)

	h.Decision.Register(r)
	h.Case.Register(r)
	h.Regulatory.Register(r)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
