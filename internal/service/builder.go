package service

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"harnesspair/internal/domain"
	"harnesspair/internal/repository"
	"harnesspair/internal/sampler"
)

// DefaultAttemptsPerResult bounds a run at this many attempts per target pair
const DefaultAttemptsPerResult = 100

// Builder collects a random set of distinct harness pairs
type Builder struct {
	wires             repository.WireReader
	sampler           *sampler.Sampler
	attemptsPerResult int
}

// NewBuilder creates a builder. attemptsPerResult <= 0 uses the default.
func NewBuilder(wires repository.WireReader, s *sampler.Sampler, attemptsPerResult int) *Builder {
	if attemptsPerResult <= 0 {
		attemptsPerResult = DefaultAttemptsPerResult
	}
	return &Builder{
		wires:             wires,
		sampler:           s,
		attemptsPerResult: attemptsPerResult,
	}
}

// Build draws pairs of drawings with replacement until a randomly chosen
// number (3 or 4) of distinct pairs has been collected.
//
// Each attempt reads both wire lists from storage. A storage error aborts
// the run. If the attempt cap is reached first, the error wraps
// domain.ErrInsufficientPairs.
func (b *Builder) Build(ctx context.Context, drawings []domain.HarnessDrawing) (*domain.PairRun, error) {
	if len(drawings) == 0 {
		return nil, fmt.Errorf("%w: no harness drawings to sample from", domain.ErrInvalidArgument)
	}

	target := b.sampler.PickCount()
	maxAttempts := b.attemptsPerResult * target

	run := &domain.PairRun{
		Target: target,
		Pairs:  make([]domain.HarnessPair, 0, target),
	}
	seen := mapset.NewThreadUnsafeSetWithSize[domain.HarnessPair](target)

	for run.Attempts < maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run.Attempts++

		pair, err := b.attempt(ctx, drawings)
		if err != nil {
			return nil, err
		}

		if seen.Add(pair) {
			run.Pairs = append(run.Pairs, pair)
			if len(run.Pairs) == target {
				return run, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: collected %d of %d after %d attempts over %d drawings",
		domain.ErrInsufficientPairs, len(run.Pairs), target, run.Attempts, len(drawings))
}

func (b *Builder) attempt(ctx context.Context, drawings []domain.HarnessDrawing) (domain.HarnessPair, error) {
	first, err := sampler.Pick(b.sampler, drawings)
	if err != nil {
		return domain.HarnessPair{}, err
	}
	second, err := sampler.Pick(b.sampler, drawings)
	if err != nil {
		return domain.HarnessPair{}, err
	}

	firstWires, err := b.wires.ListWires(ctx, first.ID)
	if err != nil {
		return domain.HarnessPair{}, fmt.Errorf("load wires for harness %d: %w", first.ID, err)
	}
	secondWires, err := b.wires.ListWires(ctx, second.ID)
	if err != nil {
		return domain.HarnessPair{}, fmt.Errorf("load wires for harness %d: %w", second.ID, err)
	}

	return domain.NewHarnessPair(first, second, domain.HasDuplicateHousing(firstWires, secondWires)), nil
}
