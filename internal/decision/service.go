package decision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"autocomply/internal/audit"
	"autocomply/internal/decision/metrics"
	"autocomply/internal/regulatory"
)

// AuditPublisher records decision events append-only.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service runs the per-family checklists, resolves risk, renders the
// explanation, and records outcomes. The goal is to keep the rules
// centralized and testable: evaluation itself is pure computation over the
// payload plus the static catalogue.
type Service struct {
	checklists map[Family]Checklist
	catalog    *regulatory.Catalog
	log        Log
	audit      AuditPublisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewService constructs the decision service. The catalogue and decision log
// are constructor-injected so tests can substitute fixtures.
func NewService(
	checklists map[Family]Checklist,
	catalog *regulatory.Catalog,
	log Log,
	auditPub AuditPublisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		checklists: checklists,
		catalog:    catalog,
		log:        log,
		audit:      auditPub,
		logger:     logger,
		metrics:    m,
	}
}

// Evaluate judges one payload and records the outcome. It only errors for
// invalid program states (unknown family, persistence failure); payload
// content never errors, it degrades the status instead.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (*Outcome, error) {
	start := time.Now()

	checklist, ok := s.checklists[req.Family]
	if !ok {
		return nil, fmt.Errorf("no checklist registered for family %q", req.Family)
	}

	outcome := checklist.Evaluate(req.Payload)
	outcome.RiskLevel = ResolveRisk(outcome.Status, outcome.RiskLevel)

	sources := s.catalog.GetByIDs(outcome.RegulatoryReferences)
	reason, err := BuildExplanation(outcome.Status, checklist.Jurisdiction, sources)
	if err != nil {
		// Unrecognized status is a programmer error; a decision response must
		// still be returned.
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "explanation builder rejected status",
				"family", req.Family,
				"status", outcome.Status,
				"error", err,
			)
		}
		reason = genericExplanation(checklist.Jurisdiction, sources)
	}
	outcome.Reason = reason

	outcome.ID = uuid.NewString()
	outcome.TraceID = req.TraceID
	if outcome.TraceID == "" {
		outcome.TraceID = uuid.NewString()
	}
	outcome.EvaluatedAt = time.Now().UTC()

	// Recording is fail-closed: an outcome that cannot be persisted is not
	// returned, because the case aggregator must later see every decision.
	if err := s.log.Append(ctx, outcome); err != nil {
		return nil, fmt.Errorf("append decision outcome: %w", err)
	}

	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			TraceID: outcome.TraceID,
			Action:  audit.ActionDecisionEvaluated,
			Family:  string(req.Family),
			Status:  string(outcome.Status),
			Detail:  outcome.Reason,
		}); err != nil && s.logger != nil {
			s.logger.ErrorContext(ctx, "audit emit failed",
				"trace_id", outcome.TraceID,
				"error", err,
			)
		}
	}

	s.metrics.IncrementOutcome(string(outcome.Status), string(req.Family))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "decision evaluated",
			"trace_id", outcome.TraceID,
			"family", req.Family,
			"status", outcome.Status,
			"risk_level", outcome.RiskLevel,
			"missing_fields", len(outcome.MissingFields),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return &outcome, nil
}
