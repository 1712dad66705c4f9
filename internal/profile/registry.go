package profile

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Store provides profile persistence. Load returns (nil, nil) when no
// record exists for the student.
type Store interface {
	Saver
	Load(ctx context.Context, studentID string) (*Record, error)
}

// Registry is the lifetime-scoped profile cache owned by the request layer.
// It serializes all profile access per student id: the mastery update is
// read-modify-write, so at most one writer may touch a given student's
// profile at a time. Different students proceed in parallel.
type Registry struct {
	store  Store
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	mu      sync.Mutex
	profile *Profile
}

// NewRegistry creates a Registry with write-through persistence.
func NewRegistry(store Store, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:   store,
		logger:  logger,
		entries: make(map[string]*registryEntry),
	}
}

// Acquire returns the profile for studentID with its per-student lock held.
// The caller must invoke release when done. On first reference the profile
// is loaded from the store; a load failure falls back to a fresh default
// profile (the data-loss risk is accepted and logged).
func (r *Registry) Acquire(ctx context.Context, studentID string, impairment Impairment) (*Profile, func()) {
	r.mu.Lock()
	e, ok := r.entries[studentID]
	if !ok {
		e = &registryEntry{}
		r.entries[studentID] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	if e.profile == nil {
		e.profile = r.load(ctx, studentID, impairment)
	}
	return e.profile, e.mu.Unlock
}

// Evict drops the cached profile for studentID. The next Acquire reloads
// from the store.
func (r *Registry) Evict(studentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, studentID)
}

func (r *Registry) load(ctx context.Context, studentID string, impairment Impairment) *Profile {
	rec, err := r.store.Load(ctx, studentID)
	if err != nil {
		r.logger.Warn("profile load failed, starting fresh",
			zap.String("student_id", studentID), zap.Error(err))
	}

	var p *Profile
	if rec != nil {
		p = FromRecord(rec)
	} else {
		p = New(studentID, impairment)
	}
	p.SetSaver(r.store)
	return p
}
