package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Record tracks one page's generation state across update turns.
type Record struct {
	ID             string
	OriginalPrompt string
	StylePreset    string
	CurrentHTML    string
	Images         map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Store is an in-memory session registry keyed by uuid.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Record
	ttl      time.Duration
	logger   *zap.Logger
}

// NewStore builds a store whose sessions expire after ttl of inactivity.
// A non-positive ttl disables expiry.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Record),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create registers a new session and returns its record.
func (s *Store) Create(prompt, stylePreset, html string, uploaded map[string]string) Record {
	now := time.Now()
	rec := &Record{
		ID:             uuid.New().String(),
		OriginalPrompt: prompt,
		StylePreset:    stylePreset,
		CurrentHTML:    html,
		Images:         cloneImages(uploaded),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.sessions[rec.ID] = rec
	s.mu.Unlock()

	return *rec
}

// Get returns a copy of the session record.
func (s *Store) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	copied := *rec
	copied.Images = cloneImages(rec.Images)
	return copied, nil
}

// UpdateHTML stores the latest page for a session and bumps its clock.
func (s *Store) UpdateHTML(id, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	rec.CurrentHTML = html
	rec.UpdatedAt = time.Now()
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune drops sessions idle longer than the ttl and returns how many went.
func (s *Store) Prune() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, rec := range s.sessions {
		if rec.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

// StartJanitor prunes expired sessions on the given interval until the
// context is cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(); n > 0 {
				s.logger.Info("pruned idle sessions", zap.Int("count", n))
			}
		}
	}
}

func cloneImages(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
