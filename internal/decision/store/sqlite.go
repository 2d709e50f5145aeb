package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"autocomply/internal/decision"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS decisions (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT NOT NULL UNIQUE,
	trace_id         TEXT NOT NULL,
	engine_family    TEXT NOT NULL,
	decision_type    TEXT NOT NULL,
	status           TEXT NOT NULL,
	reason           TEXT NOT NULL,
	missing_fields   TEXT NOT NULL,
	regulatory_refs  TEXT NOT NULL,
	risk_level       TEXT NOT NULL,
	risk_score       REAL NOT NULL,
	debug_info       TEXT,
	evaluated_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decisions_trace ON decisions(trace_id);
`

// SQLiteLog persists decisions in a local SQLite file, the no-infra way to
// keep the demo durable across restarts.
type SQLiteLog struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) a SQLite-backed decision log.
func OpenSQLite(dsn string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteLog{db: db}, nil
}

func (s *SQLiteLog) Close() error {
	return s.db.Close()
}

func (s *SQLiteLog) Append(ctx context.Context, outcome decision.Outcome) error {
	missing, refs, debug, err := marshalOutcomeColumns(outcome)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO decisions
			(id, trace_id, engine_family, decision_type, status, reason,
			 missing_fields, regulatory_refs, risk_level, risk_score, debug_info, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		outcome.ID, outcome.TraceID, outcome.EngineFamily, outcome.DecisionType,
		string(outcome.Status), outcome.Reason, missing, refs,
		string(outcome.RiskLevel), outcome.RiskScore, debug,
		outcome.EvaluatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (s *SQLiteLog) ListByTrace(ctx context.Context, traceID string) ([]decision.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trace_id, engine_family, decision_type, status, reason,
		       missing_fields, regulatory_refs, risk_level, risk_score, debug_info, evaluated_at
		FROM decisions WHERE trace_id = ? ORDER BY seq`, traceID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var result []decision.Outcome
	for rows.Next() {
		var (
			o          decision.Outcome
			missing    string
			refs       string
			debug      sql.NullString
			evaluated  string
			status     string
			riskLevel  string
		)
		if err := rows.Scan(&o.ID, &o.TraceID, &o.EngineFamily, &o.DecisionType,
			&status, &o.Reason, &missing, &refs, &riskLevel, &o.RiskScore,
			&debug, &evaluated); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		o.Status = decision.Status(status)
		o.RiskLevel = decision.RiskLevel(riskLevel)
		if err := unmarshalOutcomeColumns(&o, missing, refs, debug.String); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, evaluated); err == nil {
			o.EvaluatedAt = t
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func marshalOutcomeColumns(outcome decision.Outcome) (missing, refs, debug string, err error) {
	m, err := json.Marshal(outcome.MissingFields)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal missing_fields: %w", err)
	}
	r, err := json.Marshal(outcome.RegulatoryReferences)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal regulatory_references: %w", err)
	}
	d := []byte("null")
	if outcome.DebugInfo != nil {
		if d, err = json.Marshal(outcome.DebugInfo); err != nil {
			return "", "", "", fmt.Errorf("marshal debug_info: %w", err)
		}
	}
	return string(m), string(r), string(d), nil
}

func unmarshalOutcomeColumns(o *decision.Outcome, missing, refs, debug string) error {
	if err := json.Unmarshal([]byte(missing), &o.MissingFields); err != nil {
		return fmt.Errorf("unmarshal missing_fields: %w", err)
	}
	if err := json.Unmarshal([]byte(refs), &o.RegulatoryReferences); err != nil {
		return fmt.Errorf("unmarshal regulatory_references: %w", err)
	}
	if debug != "" && debug != "null" {
		if err := json.Unmarshal([]byte(debug), &o.DebugInfo); err != nil {
			return fmt.Errorf("unmarshal debug_info: %w", err)
		}
	}
	return nil
}
