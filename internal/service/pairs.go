package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"harnesspair/internal/domain"
	"harnesspair/internal/repository"
)

// PairService runs generation against the drawing repository and keeps the
// most recent result for the presentation adapters
type PairService struct {
	repo     repository.DrawingRepository
	builder  *Builder
	eventBus *EventBus
	metrics  *Metrics
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.RWMutex
	latest *domain.PairRun
}

// NewPairService creates a pair service. eventBus, metrics and logger may be nil.
func NewPairService(repo repository.DrawingRepository, builder *Builder, eventBus *EventBus, metrics *Metrics, logger *zap.Logger) *PairService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairService{
		repo:     repo,
		builder:  builder,
		eventBus: eventBus,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate reads all drawings and builds a fresh run, replacing the latest
func (s *PairService) Generate(ctx context.Context) (*domain.PairRun, error) {
	drawings, err := s.repo.ListDrawings(ctx)
	if err != nil {
		s.fail(err)
		return nil, fmt.Errorf("list drawings: %w", err)
	}

	run, err := s.builder.Build(ctx, drawings)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	run.ID = uuid.NewString()
	run.GeneratedAt = s.now().UTC()

	s.mu.Lock()
	s.latest = run
	s.mu.Unlock()

	s.metrics.observeSuccess(run.Attempts, run.DuplicateCount())
	s.logger.Info("generated harness pairs",
		zap.String("run_id", run.ID),
		zap.Int("drawings", len(drawings)),
		zap.Int("pairs", len(run.Pairs)),
		zap.Int("attempts", run.Attempts),
		zap.Int("duplicates", run.DuplicateCount()),
	)
	s.eventBus.Publish(Event{
		Type:    EventPairsGenerated,
		Payload: run,
	})

	return run, nil
}

// Latest returns the most recent run, generating one on first use
func (s *PairService) Latest(ctx context.Context) (*domain.PairRun, error) {
	s.mu.RLock()
	run := s.latest
	s.mu.RUnlock()

	if run != nil {
		return run, nil
	}
	return s.Generate(ctx)
}

// DrawingsChanged regenerates after the underlying database changed
func (s *PairService) DrawingsChanged(ctx context.Context) {
	s.eventBus.Publish(Event{Type: EventDrawingsChanged})
	if _, err := s.Generate(ctx); err != nil {
		s.logger.Warn("regeneration after database change failed", zap.Error(err))
	}
}

// ListDrawings returns every drawing
func (s *PairService) ListDrawings(ctx context.Context) ([]domain.HarnessDrawing, error) {
	return s.repo.ListDrawings(ctx)
}

// GetDrawing returns a single drawing
func (s *PairService) GetDrawing(ctx context.Context, id int64) (*domain.HarnessDrawing, error) {
	return s.repo.GetDrawing(ctx, id)
}

// ListWires returns the wires of one drawing, which must exist
func (s *PairService) ListWires(ctx context.Context, harnessID int64) ([]domain.HarnessWiring, error) {
	if _, err := s.repo.GetDrawing(ctx, harnessID); err != nil {
		return nil, err
	}
	return s.repo.ListWires(ctx, harnessID)
}

func (s *PairService) fail(err error) {
	outcome := "error"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		outcome = "invalid_argument"
	case errors.Is(err, domain.ErrInsufficientPairs):
		outcome = "insufficient_pairs"
	case errors.Is(err, domain.ErrStorage):
		outcome = "storage"
	}
	s.metrics.observeFailure(outcome)
	s.logger.Error("harness pair generation failed", zap.String("outcome", outcome), zap.Error(err))
	s.eventBus.Publish(Event{
		Type:    EventGenerationFailed,
		Payload: map[string]string{"outcome": outcome, "error": err.Error()},
	})
}
