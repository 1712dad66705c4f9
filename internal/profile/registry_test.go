package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu      sync.Mutex
	records map[string]*Record
	loadErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*Record)}
}

func (s *memStore) Load(_ context.Context, studentID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.records[studentID], nil
}

func (s *memStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.records[rec.StudentID] = rec
	return nil
}

func TestRegistry_LazyCreateAndWriteThrough(t *testing.T) {
	store := newMemStore()
	reg := NewRegistry(store, nil)
	ctx := context.Background()

	p, release := reg.Acquire(ctx, "s1", ImpairmentLowVision)
	_ = p.RecordAttempt(ctx, "addition", "", true, nil)
	release()

	if store.saves != 1 {
		t.Errorf("saves = %d, want 1 (write-through)", store.saves)
	}

	// A second acquire returns the cached instance with state intact.
	p2, release2 := reg.Acquire(ctx, "s1", ImpairmentCongenitalBlindness)
	defer release2()
	if got := p2.TopicLevel("addition"); got != 1.2 {
		t.Errorf("cached level = %v, want 1.2", got)
	}
	if p2.Impairment() != ImpairmentLowVision {
		t.Errorf("impairment = %v, want low vision from first creation", p2.Impairment())
	}
}

func TestRegistry_LoadsExistingRecord(t *testing.T) {
	store := newMemStore()
	store.records["s1"] = &Record{
		StudentID:      "s1",
		ImpairmentType: 2,
		TopicProgress:  map[string]float64{"division": 6},
	}
	reg := NewRegistry(store, nil)

	p, release := reg.Acquire(context.Background(), "s1", ImpairmentCongenitalBlindness)
	defer release()
	if got := p.TopicLevel("division"); got != 6 {
		t.Errorf("loaded level = %v, want 6", got)
	}
}

func TestRegistry_LoadFailureFallsBackToFresh(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("corrupt row")
	reg := NewRegistry(store, nil)

	p, release := reg.Acquire(context.Background(), "s1", ImpairmentAcquiredBlindness)
	defer release()
	if got := p.TopicLevel("addition"); got != DefaultLevel {
		t.Errorf("fresh profile level = %v, want default", got)
	}
}

func TestRegistry_SerializesWritersPerStudent(t *testing.T) {
	store := newMemStore()
	reg := NewRegistry(store, nil)
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				p, release := reg.Acquire(ctx, "shared", ImpairmentCongenitalBlindness)
				_ = p.RecordAttempt(ctx, "addition", "", true, nil)
				release()
			}
		}()
	}
	wg.Wait()

	p, release := reg.Acquire(ctx, "shared", ImpairmentCongenitalBlindness)
	defer release()
	if got := len(p.History()); got != workers*perWorker {
		t.Errorf("history length = %d, want %d (no lost updates)", got, workers*perWorker)
	}
}

func TestRegistry_Evict(t *testing.T) {
	store := newMemStore()
	reg := NewRegistry(store, nil)
	ctx := context.Background()

	p, release := reg.Acquire(ctx, "s1", ImpairmentCongenitalBlindness)
	_ = p.RecordAttempt(ctx, "addition", "", true, nil)
	release()

	reg.Evict("s1")

	// Reload picks up the persisted state, not a blank profile.
	p2, release2 := reg.Acquire(ctx, "s1", ImpairmentCongenitalBlindness)
	defer release2()
	if got := p2.TopicLevel("addition"); got != 1.2 {
		t.Errorf("reloaded level = %v, want 1.2", got)
	}
}
