package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"autocomply/internal/decision"
	"autocomply/internal/decision/handler/mocks"
)

//go:generate mockgen -source=handler.go -destination=mocks/decision-mocks.go -package=mocks Service
type DecisionHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DecisionHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestDecisionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DecisionHandlerSuite))
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(mockService, logger)
	r := chi.NewRouter()
	handler.Register(r)
	return handler, mockService
}

func (s *DecisionHandlerSuite) TestHandleEvaluate() {
	handler, mockService := newTestHandler(s.T())
	evaluatedAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	mockService.EXPECT().Evaluate(
		gomock.Any(),
		decision.EvaluateRequest{
			Family:  decision.FamilyOhioTDDD,
			Payload: decision.Payload{"license_number": "02-1234567", "expiration_date": "2027-06-30"},
			TraceID: "case-1",
		},
	).Return(&decision.Outcome{
		ID:                   "dec_abc",
		TraceID:              "case-1",
		EngineFamily:         "tddd",
		DecisionType:         "ohio_tddd",
		Status:               decision.StatusOKToShip,
		Reason:               "clear to proceed",
		MissingFields:        []string{},
		RegulatoryReferences: []string{"ohio_tddd_rules"},
		RiskLevel:            decision.RiskLow,
		RiskScore:            0.1,
		EvaluatedAt:          evaluatedAt,
	}, nil)

	body, err := json.Marshal(map[string]any{
		"family":   "ohio_tddd",
		"payload":  map[string]string{"license_number": "02-1234567", "expiration_date": "2027-06-30"},
		"trace_id": "case-1",
	})
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "dec_abc", resp["id"])
	assert.Equal(s.T(), "case-1", resp["trace_id"])
	assert.Equal(s.T(), "ok_to_ship", resp["status"])
	assert.Equal(s.T(), "low", resp["risk_level"])
	refs := resp["regulatory_references"].([]any)
	assert.Equal(s.T(), "ohio_tddd_rules", refs[0])
}

func (s *DecisionHandlerSuite) TestHandleEvaluateUnknownFamily() {
	handler, mockService := newTestHandler(s.T())
	mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	body := []byte(`{"family": "horoscope", "payload": {}}`)
	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "validation_error", resp["error"])
}

func (s *DecisionHandlerSuite) TestHandleEvaluateMissingFamily() {
	handler, mockService := newTestHandler(s.T())
	mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	body := []byte(`{"payload": {"license_number": "02-1234567"}}`)
	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *DecisionHandlerSuite) TestHandleEvaluateMalformedJSON() {
	handler, mockService := newTestHandler(s.T())
	mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader([]byte(`{"family":`)))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *DecisionHandlerSuite) TestHandleEvaluateNilPayloadBecomesEmpty() {
	handler, mockService := newTestHandler(s.T())
	mockService.EXPECT().Evaluate(
		gomock.Any(),
		decision.EvaluateRequest{
			Family:  decision.FamilyOrder,
			Payload: decision.Payload{},
		},
	).Return(&decision.Outcome{
		ID:            "dec_def",
		TraceID:       "generated",
		EngineFamily:  "order",
		DecisionType:  "order",
		Status:        decision.StatusNeedsReview,
		RiskLevel:     decision.RiskMedium,
		MissingFields: []string{"order_id", "customer_id", "product_category"},
		EvaluatedAt:   time.Now().UTC(),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader([]byte(`{"family": "order"}`)))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "needs_review", resp["status"])
}

func (s *DecisionHandlerSuite) TestHandleEvaluateServiceError() {
	handler, mockService := newTestHandler(s.T())
	mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("append decision outcome: disk full"))

	body := []byte(`{"family": "order", "payload": {"order_id": "ORD-1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/decision/evaluate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleEvaluate(w, req)

	assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "internal_error", resp["error"])
	assert.NotContains(s.T(), w.Body.String(), "disk full")
}
