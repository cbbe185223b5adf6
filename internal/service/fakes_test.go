package service

import (
	"context"
	"fmt"

	"harnesspair/internal/domain"
)

// scriptedSource replays values modulo n and counts draws
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.calls%len(s.values)] % n
	s.calls++
	return v
}

// fakeRepo is an in-memory DrawingRepository
type fakeRepo struct {
	drawings  []domain.HarnessDrawing
	wires     map[int64][]domain.HarnessWiring
	listErr   error
	wiresErr  error
	wireReads int
}

func (f *fakeRepo) ListDrawings(ctx context.Context) ([]domain.HarnessDrawing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.drawings, nil
}

func (f *fakeRepo) GetDrawing(ctx context.Context, id int64) (*domain.HarnessDrawing, error) {
	for _, d := range f.drawings {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: harness drawing %d", domain.ErrNotFound, id)
}

func (f *fakeRepo) ListWires(ctx context.Context, harnessID int64) ([]domain.HarnessWiring, error) {
	f.wireReads++
	if f.wiresErr != nil {
		return nil, f.wiresErr
	}
	return f.wires[harnessID], nil
}

func (f *fakeRepo) Close() error { return nil }

func twoDrawingRepo() *fakeRepo {
	return &fakeRepo{
		drawings: []domain.HarnessDrawing{
			{ID: 1, Harness: "H1", HarnessVersion: "A", Drawing: "D1", DrawingVersion: "1"},
			{ID: 2, Harness: "H2", HarnessVersion: "B", Drawing: "D2", DrawingVersion: "2"},
		},
		wires: map[int64][]domain.HarnessWiring{
			1: {{ID: 1, HarnessID: 1, Housing1: "a", Housing2: "b"}},
			2: {{ID: 2, HarnessID: 2, Housing1: "c", Housing2: "d"}},
		},
	}
}
