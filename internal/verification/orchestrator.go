package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"finflow/internal/document"
	"finflow/internal/verification/metrics"
	dErrors "finflow/pkg/domain-errors"
)

// Runners bundles the four check functions so tests and future rule engines
// can swap individual checks without touching orchestration.
type Runners struct {
	Completeness func(ctx context.Context, doc document.Fields) (CompletenessResult, error)
	Fraud        func(ctx context.Context, doc document.Fields) (FraudResult, error)
	Validation   func(ctx context.Context, doc document.Fields) (ValidationResult, error)
	Compliance   func(ctx context.Context, doc document.Fields) (ComplianceResult, error)
}

// DefaultRunners returns the standard check set.
func DefaultRunners() Runners {
	return Runners{
		Completeness: CheckCompletenessFields,
		Fraud:        DetectFraud,
		Validation:   ValidateData,
		Compliance:   CheckComplianceRules,
	}
}

// Service orchestrates one verification run: fan out to all check runners
// concurrently, join, then derive the overall risk from the full result set.
// It has no side effects beyond computing the report; publishing events about
// it is the calling layer's job.
type Service struct {
	runners      Runners
	policy       ScorePolicy
	checkTimeout time.Duration
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// Option customizes a Service.
type Option func(*Service)

// WithRunners replaces the default check set.
func WithRunners(r Runners) Option {
	return func(s *Service) { s.runners = r }
}

// WithPolicy replaces the baseline scoring policy.
func WithPolicy(p ScorePolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithCheckTimeout bounds each check runner. Zero disables the bound.
func WithCheckTimeout(d time.Duration) Option {
	return func(s *Service) { s.checkTimeout = d }
}

// NewService constructs the orchestrator with its dependencies.
func NewService(logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		runners: DefaultRunners(),
		policy:  BaselinePolicy,
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify runs all four checks concurrently against the same immutable input
// and aggregates them into a report. Partially populated fields are a valid
// input; a nil fields container is not. If any runner fails, the whole
// verification fails and no partial report is returned.
func (s *Service) Verify(ctx context.Context, documentID string, fields *document.Fields) (*Report, error) {
	if fields == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "document fields are required")
	}

	start := time.Now()
	doc := *fields

	g, gctx := errgroup.WithContext(ctx)
	var results CheckResults

	s.runCheck(gctx, g, CheckCompleteness, func(checkCtx context.Context) error {
		result, err := s.runners.Completeness(checkCtx, doc)
		if err != nil {
			return err
		}
		results.Completeness = result
		return nil
	})

	s.runCheck(gctx, g, CheckFraud, func(checkCtx context.Context) error {
		result, err := s.runners.Fraud(checkCtx, doc)
		if err != nil {
			return err
		}
		results.Fraud = result
		return nil
	})

	s.runCheck(gctx, g, CheckValidation, func(checkCtx context.Context) error {
		result, err := s.runners.Validation(checkCtx, doc)
		if err != nil {
			return err
		}
		results.Validation = result
		return nil
	})

	s.runCheck(gctx, g, CheckCompliance, func(checkCtx context.Context) error {
		result, err := s.runners.Compliance(checkCtx, doc)
		if err != nil {
			return err
		}
		results.Compliance = result
		return nil
	})

	// Resume only after the last runner finishes; first failure cancels the rest.
	if err := g.Wait(); err != nil {
		s.metrics.IncrementOutcome("failed")
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "verification failed",
				"document_id", documentID,
				"error", err,
			)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "verification check failed", err)
	}

	report := &Report{
		DocumentID:  documentID,
		Status:      "completed",
		Checks:      results,
		Risk:        s.policy(results),
		CompletedAt: time.Now().UTC(),
	}

	s.metrics.IncrementOutcome("completed")
	s.metrics.ObserveVerifyLatency(time.Since(start))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "verification completed",
			"document_id", documentID,
			"risk_level", report.Risk.Level,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return report, nil
}

// runCheck launches one runner on the group with its own deadline and latency
// observation. Each runner writes to a distinct field of the shared result
// struct, so no locking is needed among them.
func (s *Service) runCheck(ctx context.Context, g *errgroup.Group, name string, run func(ctx context.Context) error) {
	g.Go(func() error {
		checkCtx := ctx
		if s.checkTimeout > 0 {
			var cancel context.CancelFunc
			checkCtx, cancel = context.WithTimeout(ctx, s.checkTimeout)
			defer cancel()
		}

		start := time.Now()
		err := run(checkCtx)
		s.metrics.ObserveCheckLatency(name, time.Since(start))

		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}
