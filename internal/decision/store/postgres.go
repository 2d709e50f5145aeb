package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"autocomply/internal/decision"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS decisions (
	seq              BIGSERIAL PRIMARY KEY,
	id               TEXT NOT NULL UNIQUE,
	trace_id         TEXT NOT NULL,
	engine_family    TEXT NOT NULL,
	decision_type    TEXT NOT NULL,
	status           TEXT NOT NULL,
	reason           TEXT NOT NULL,
	missing_fields   JSONB NOT NULL,
	regulatory_refs  JSONB NOT NULL,
	risk_level       TEXT NOT NULL,
	risk_score       DOUBLE PRECISION NOT NULL,
	debug_info       JSONB,
	evaluated_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decisions_trace ON decisions(trace_id);
`

// PostgresLog persists decisions in PostgreSQL for shared deployments.
// Appends are independent inserts keyed by the outcome's own id, so
// concurrent writers never race.
type PostgresLog struct {
	db *sql.DB
}

// OpenPostgres opens (and migrates) a PostgreSQL-backed decision log.
func OpenPostgres(dsn string) (*PostgresLog, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log := &PostgresLog{db: db}
	if err := log.EnsureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return log, nil
}

// NewPostgresLog wraps an existing connection without migrating, for callers
// that manage schema themselves (integration tests included).
func NewPostgresLog(db *sql.DB) *PostgresLog {
	return &PostgresLog{db: db}
}

// EnsureSchema applies the decisions table schema.
func (s *PostgresLog) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("apply postgres schema: %w", err)
	}
	return nil
}

func (s *PostgresLog) Close() error {
	return s.db.Close()
}

func (s *PostgresLog) Append(ctx context.Context, outcome decision.Outcome) error {
	missing, refs, debug, err := marshalOutcomeColumns(outcome)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO decisions
			(id, trace_id, engine_family, decision_type, status, reason,
			 missing_fields, regulatory_refs, risk_level, risk_score, debug_info, evaluated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		outcome.ID, outcome.TraceID, outcome.EngineFamily, outcome.DecisionType,
		string(outcome.Status), outcome.Reason, missing, refs,
		string(outcome.RiskLevel), outcome.RiskScore, nullableJSON(debug),
		outcome.EvaluatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (s *PostgresLog) ListByTrace(ctx context.Context, traceID string) ([]decision.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trace_id, engine_family, decision_type, status, reason,
		       missing_fields, regulatory_refs, risk_level, risk_score, debug_info, evaluated_at
		FROM decisions WHERE trace_id = $1 ORDER BY seq`, traceID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var result []decision.Outcome
	for rows.Next() {
		var (
			o         decision.Outcome
			missing   string
			refs      string
			debug     sql.NullString
			status    string
			riskLevel string
			evaluated time.Time
		)
		if err := rows.Scan(&o.ID, &o.TraceID, &o.EngineFamily, &o.DecisionType,
			&status, &o.Reason, &missing, &refs, &riskLevel, &o.RiskScore,
			&debug, &evaluated); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		o.Status = decision.Status(status)
		o.RiskLevel = decision.RiskLevel(riskLevel)
		o.EvaluatedAt = evaluated.UTC()
		if err := unmarshalOutcomeColumns(&o, missing, refs, debug.String); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func nullableJSON(raw string) any {
	if raw == "" || raw == "null" {
		return nil
	}
	return raw
}
