package state

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/persist"
)

// Store holds the in-memory application state and writes every new version
// through the configured persister. Mutations replace the whole state value;
// callers must treat snapshots as read-only and build fresh slices when
// deriving the next state.
type Store struct {
	mu        sync.RWMutex
	current   domain.AppState
	persister persist.Persister
	log       *zap.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Open loads the last saved snapshot through p, merging it over the default
// state so fields added after the snapshot was written pick up their
// defaults. Load and decode failures are logged and the session continues on
// the default state; persistence keeps being attempted on later saves.
func Open(ctx context.Context, p persist.Persister, log *zap.Logger) *Store {
	s := &Store{
		current:   Default(),
		persister: p,
		log:       log,
		subs:      make(map[int]func()),
	}
	blob, err := p.Load(ctx)
	switch {
	case err == nil:
		merged := Default()
		if uerr := json.Unmarshal(blob, &merged); uerr != nil {
			log.Error("decode saved state, starting from defaults", zap.Error(uerr))
		} else {
			s.current = merged
		}
	case err == persist.ErrNotFound:
		log.Info("no saved state, starting from defaults")
	default:
		log.Error("load saved state, starting from defaults", zap.Error(err))
	}
	return s
}

// Snapshot returns the current state. The slices inside are shared with the
// store and must not be modified.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to the current state, installs the result, persists it
// and notifies subscribers. The save happens inside the critical section so
// the persister always receives versions in the order they were installed.
// A failed save is logged and the in-memory state keeps the new value.
func (s *Store) Update(ctx context.Context, fn func(domain.AppState) domain.AppState) {
	s.mu.Lock()
	next := fn(s.current)
	s.current = next
	if blob, err := json.Marshal(next); err != nil {
		s.log.Error("encode state", zap.Error(err))
	} else if err := s.persister.Save(ctx, blob); err != nil {
		s.log.Error("save state", zap.Error(err))
	}
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Export returns the current state serialized as JSON, the same shape the
// persister stores.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.current)
}

// Close flushes nothing (saves are synchronous) and releases the persister.
func (s *Store) Close(ctx context.Context) error {
	return s.persister.Close(ctx)
}
