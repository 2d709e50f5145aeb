package casefile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"autocomply/internal/audit"
	"autocomply/internal/decision"
	"autocomply/internal/regulatory"
	pstrings "autocomply/pkg/platform/strings"
)

// fallbackTopK caps how many references are inferred for a decision that
// cites none of its own.
const fallbackTopK = 2

// AuditPublisher records case-read events append-only.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service computes case summaries by fanning in over the decision log. It is
// read-only; a summary reflects the decisions recorded before the query
// started, and concurrent appends simply show up on the next read.
type Service struct {
	log     decision.Log
	catalog *regulatory.Catalog
	audit   AuditPublisher
	logger  *slog.Logger
}

// NewService constructs the case aggregator.
func NewService(log decision.Log, catalog *regulatory.Catalog, auditPub AuditPublisher, logger *slog.Logger) *Service {
	return &Service{
		log:     log,
		catalog: catalog,
		audit:   auditPub,
		logger:  logger,
	}
}

// Summarize builds the case-level view for one trace. A trace with zero
// recorded decisions yields a valid, empty summary: no decisions means
// nothing blocked.
func (s *Service) Summarize(ctx context.Context, traceID string) (*Summary, error) {
	outcomes, err := s.log.ListByTrace(ctx, traceID)
	if err != nil {
		return nil, fmt.Errorf("list decisions for trace %s: %w", traceID, err)
	}

	summary := &Summary{
		TraceID:              traceID,
		OverallStatus:        decision.StatusOKToShip,
		OverallRisk:          RiskLow,
		Decisions:            []DecisionSummary{},
		RegulatoryReferences: []string{},
		RAGSources:           []regulatory.Source{},
	}

	if len(outcomes) == 0 {
		summary.Insight = Insight{
			Summary:         "No decisions recorded for this case yet.",
			Recommendations: []string{},
		}
		s.recordRead(ctx, summary)
		return summary, nil
	}

	references := s.collectReferences(ctx, outcomes)

	var allRefs []string
	for i, o := range outcomes {
		risk := decision.ResolveRisk(o.Status, o.RiskLevel)
		summary.Decisions = append(summary.Decisions, DecisionSummary{
			ID:                   o.ID,
			EngineFamily:         o.EngineFamily,
			DecisionType:         o.DecisionType,
			Status:               o.Status,
			RiskLevel:            risk,
			Reason:               o.Reason,
			MissingFields:        o.MissingFields,
			RegulatoryReferences: references[i],
			EvaluatedAt:          o.EvaluatedAt,
		})
		allRefs = append(allRefs, references[i]...)

		if statusRank(o.Status) > statusRank(summary.OverallStatus) {
			summary.OverallStatus = o.Status
		}
	}

	summary.OverallRisk = mergeRisks(summary.Decisions)
	summary.RegulatoryReferences = pstrings.DedupeAndTrim(allRefs)
	if summary.RegulatoryReferences == nil {
		summary.RegulatoryReferences = []string{}
	}
	summary.RAGSources = s.catalog.GetByIDs(summary.RegulatoryReferences)
	summary.Insight = buildInsight(summary)

	s.recordRead(ctx, summary)
	return summary, nil
}

// recordRead emits the case-read audit event. Reads are fail-open: an audit
// sink failure is logged and the summary is still returned.
func (s *Service) recordRead(ctx context.Context, summary *Summary) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		TraceID: summary.TraceID,
		Action:  audit.ActionCaseSummarized,
		Status:  string(summary.OverallStatus),
		Detail:  summary.Insight.Summary,
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			"trace_id", summary.TraceID,
			"error", err,
		)
	}
}

// collectReferences returns each outcome's reference list, inferring
// best-effort fallback references for decisions that cite none by searching
// the catalogue for their decision type. Fallback searches run in parallel
// and never fail the summary.
func (s *Service) collectReferences(ctx context.Context, outcomes []decision.Outcome) [][]string {
	references := make([][]string, len(outcomes))

	g, ctx := errgroup.WithContext(ctx)
	for i, o := range outcomes {
		if len(o.RegulatoryReferences) > 0 {
			references[i] = o.RegulatoryReferences
			continue
		}
		i, o := i, o
		g.Go(func() error {
			query := strings.ReplaceAll(o.DecisionType, "_", " ")
			matches := s.catalog.Search(query, regulatory.SearchOptions{TopK: fallbackTopK})
			refs := make([]string, 0, len(matches))
			for _, m := range matches {
				refs = append(refs, m.Source.ID)
			}
			references[i] = refs

			if len(refs) > 0 && s.logger != nil {
				s.logger.DebugContext(ctx, "inferred fallback references",
					"trace_id", o.TraceID,
					"decision_type", o.DecisionType,
					"references", len(refs),
				)
			}
			return nil
		})
	}
	// Fallback lookups are best-effort and the goroutines never error.
	_ = g.Wait()

	for i := range references {
		if references[i] == nil {
			references[i] = []string{}
		}
	}
	return references
}

// statusRank orders statuses for the precedence rule: a single blocked
// decision blocks the whole case regardless of how many others passed.
func statusRank(status decision.Status) int {
	switch status {
	case decision.StatusBlocked:
		return 3
	case decision.StatusNeedsReview:
		return 2
	default:
		return 1
	}
}

// mergeRisks returns the unanimous risk level, or "mixed" when constituent
// risks disagree.
func mergeRisks(decisions []DecisionSummary) OverallRisk {
	if len(decisions) == 0 {
		return RiskLow
	}
	first := decisions[0].RiskLevel
	for _, d := range decisions[1:] {
		if d.RiskLevel != first {
			return RiskMixed
		}
	}
	return OverallRisk(first)
}

// buildInsight renders the case-level narrative: one sentence counting
// decisions and naming the engine families involved, plus up to two
// recommendations chosen by status/risk rules. Deterministic for a given
// summary.
func buildInsight(summary *Summary) Insight {
	var families []string
	seen := make(map[string]struct{})
	anyMissing := false
	for _, d := range summary.Decisions {
		if _, ok := seen[d.EngineFamily]; !ok {
			seen[d.EngineFamily] = struct{}{}
			families = append(families, d.EngineFamily)
		}
		if len(d.MissingFields) > 0 {
			anyMissing = true
		}
	}

	noun := "decisions"
	if len(summary.Decisions) == 1 {
		noun = "decision"
	}
	text := fmt.Sprintf("%d %s recorded across engine families: %s.",
		len(summary.Decisions), noun, strings.Join(families, ", "))

	recommendations := []string{}
	if summary.OverallStatus == decision.StatusBlocked || summary.OverallRisk == RiskHigh {
		recommendations = append(recommendations,
			"Escalate to a compliance analyst before any shipment proceeds.")
	}
	if anyMissing {
		recommendations = append(recommendations,
			"Request the documentation listed under each decision's missing fields.")
	}

	return Insight{Summary: text, Recommendations: recommendations}
}
