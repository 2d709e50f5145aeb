//go:build integration

package store_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"autocomply/internal/decision"
	"autocomply/internal/decision/store"
	"autocomply/pkg/testutil/containers"
)

type PostgresLogSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	log      *store.PostgresLog
}

func TestPostgresLogSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresLogSuite))
}

func (s *PostgresLogSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.log = store.NewPostgresLog(s.postgres.DB)
	s.Require().NoError(s.log.EnsureSchema(context.Background()))
}

func (s *PostgresLogSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "decisions")
	s.Require().NoError(err)
}

func testOutcome(traceID, id string) decision.Outcome {
	return decision.Outcome{
		ID:                   id,
		TraceID:              traceID,
		EngineFamily:         "pharmacy",
		DecisionType:         "ny_pharmacy",
		Status:               decision.StatusNeedsReview,
		Reason:               "registration documentation incomplete",
		MissingFields:        []string{"expiration_date"},
		RegulatoryReferences: []string{"ny_pharmacy_license", "ny_pharmacy_expiration"},
		RiskLevel:            decision.RiskMedium,
		RiskScore:            0.52,
		DebugInfo:            map[string]string{"expiration_date": "unparsable date: soon"},
		EvaluatedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresLogSuite) TestRoundTrip() {
	ctx := context.Background()
	want := testOutcome("trace-pg-1", "d1")

	s.Require().NoError(s.log.Append(ctx, want))

	got, err := s.log.ListByTrace(ctx, "trace-pg-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(want.ID, got[0].ID)
	s.Equal(want.Status, got[0].Status)
	s.Equal(want.MissingFields, got[0].MissingFields)
	s.Equal(want.RegulatoryReferences, got[0].RegulatoryReferences)
	s.Equal(want.DebugInfo, got[0].DebugInfo)
	s.Equal(want.RiskLevel, got[0].RiskLevel)
	s.True(want.EvaluatedAt.Equal(got[0].EvaluatedAt))
}

func (s *PostgresLogSuite) TestAppendOrderPerTrace() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.log.Append(ctx, testOutcome("trace-pg-ord", fmt.Sprintf("d%d", i))))
	}

	got, err := s.log.ListByTrace(ctx, "trace-pg-ord")
	s.Require().NoError(err)
	s.Require().Len(got, 5)
	for i, o := range got {
		s.Equal(fmt.Sprintf("d%d", i), o.ID)
	}
}

func (s *PostgresLogSuite) TestDuplicateIDRejected() {
	ctx := context.Background()
	s.Require().NoError(s.log.Append(ctx, testOutcome("trace-pg-dup", "d1")))
	s.Error(s.log.Append(ctx, testOutcome("trace-pg-dup", "d1")))
}

// TestConcurrentAppends verifies independent inserts never lose decisions
// when many writers record into the same trace.
func (s *PostgresLogSuite) TestConcurrentAppends() {
	ctx := context.Background()
	const goroutines = 40

	var wg sync.WaitGroup
	var successCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := s.log.Append(ctx, testOutcome("trace-pg-conc", fmt.Sprintf("c%d", idx))); err == nil {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(goroutines), successCount.Load(), "all concurrent appends should succeed")

	got, err := s.log.ListByTrace(ctx, "trace-pg-conc")
	s.Require().NoError(err)
	s.Len(got, goroutines)
}

func (s *PostgresLogSuite) TestUnknownTraceEmpty() {
	got, err := s.log.ListByTrace(context.Background(), "never-seen")
	s.Require().NoError(err)
	s.Empty(got)
}
