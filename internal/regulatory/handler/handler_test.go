package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocomply/internal/regulatory"
	"autocomply/pkg/testutil"
)

func newTestServer(t *testing.T) *chi.Mux {
	t.Helper()
	catalog := regulatory.NewCatalog(regulatory.Seed())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := regulatory.NewService(catalog, logger, nil)

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestHandleSearch(t *testing.T) {
	t.Run("returns scored matches", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/rag/regulatory/search", SearchRequest{
			Query: "ohio tddd license",
			Limit: 3,
		})
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp SearchResponse
		testutil.DecodeJSON(t, rr, &resp)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "ohio_tddd_rules", resp.Results[0].ID)
		assert.Equal(t, "OAC 4729:5-2-01", resp.Results[0].Source)
		assert.NotEmpty(t, resp.Results[0].Snippet)
		assert.Greater(t, resp.Results[0].Score, 0.0)
	})

	t.Run("jurisdiction filter narrows results", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/rag/regulatory/search", SearchRequest{
			Query:        "license registration",
			Jurisdiction: "New York",
		})
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp SearchResponse
		testutil.DecodeJSON(t, rr, &resp)
		require.NotEmpty(t, resp.Results)
		for _, result := range resp.Results {
			assert.Equal(t, "New York", result.Jurisdiction)
		}
	})

	t.Run("no matches is an empty list not an error", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/rag/regulatory/search", SearchRequest{
			Query: "quantum blockchain",
		})
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp SearchResponse
		testutil.DecodeJSON(t, rr, &resp)
		assert.Empty(t, resp.Results)
	})

	t.Run("missing query is a validation error", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/rag/regulatory/search", `{}`)
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp map[string]any
		testutil.DecodeJSON(t, rr, &resp)
		assert.Equal(t, "validation_error", resp["error"])
	})
}

func TestHandlePreview(t *testing.T) {
	t.Run("returns the single best match", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewRequest(t, http.MethodGet, "/rag/regulatory/preview?query=suspicious+order+quantity")
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp PreviewResponse
		testutil.DecodeJSON(t, rr, &resp)
		assert.True(t, resp.Found)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "order_suspicious_quantity", resp.Result.ID)
	})

	t.Run("no match reports found false", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewRequest(t, http.MethodGet, "/rag/regulatory/preview?query=quantum+blockchain")
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp PreviewResponse
		testutil.DecodeJSON(t, rr, &resp)
		assert.False(t, resp.Found)
		assert.Nil(t, resp.Result)
	})

	t.Run("missing query is a validation error", func(t *testing.T) {
		r := newTestServer(t)

		req := testutil.NewRequest(t, http.MethodGet, "/rag/regulatory/preview")
		rr := testutil.DoRequest(r, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
