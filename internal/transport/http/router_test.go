package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocomply/internal/audit"
	"autocomply/internal/casefile"
	casehandler "autocomply/internal/casefile/handler"
	"autocomply/internal/decision"
	decisionhandler "autocomply/internal/decision/handler"
	"autocomply/internal/decision/store"
	"autocomply/internal/regulatory"
	reghandler "autocomply/internal/regulatory/handler"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := regulatory.NewCatalog(regulatory.Seed())
	log := store.NewInMemoryLog()
	auditPub := audit.NewPublisher(audit.NewInMemoryStore())

	decisionSvc := decision.NewService(decision.NewChecklists(nil), catalog, log, auditPub, logger, nil)
	caseSvc := casefile.NewService(log, catalog, auditPub, logger)
	regSvc := regulatory.NewService(catalog, logger, nil)

	return NewRouter(logger, Handlers{
		Decision:   decisionhandler.New(decisionSvc, logger),
		Case:       casehandler.New(caseSvc, logger),
		Regulatory: reghandler.New(regSvc, logger),
	})
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("healthz responds ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
	})

	t.Run("metrics endpoint is mounted", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown routes return 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("responses carry a request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("evaluate then summarize flows through one trace", func(t *testing.T) {
		body := []byte(`{
			"family": "ny_pharmacy",
			"payload": {"pharmacy_name": "Hudson Apothecary"},
			"trace_id": "case-router-1"
		}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code)

		var evalResp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evalResp))
		assert.Equal(t, "blocked", evalResp["status"])

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/case-router-1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var caseResp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caseResp))
		assert.Equal(t, "blocked", caseResp["overall_status"])
		assert.Len(t, caseResp["decisions"], 1)
	})
}
