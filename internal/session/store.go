package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/flow"
)

type entry struct {
	ctrl     *flow.Controller
	lastSeen time.Time
}

// Store keeps one controller per page load. Nothing is persisted; idle
// sessions are closed and forgotten by Sweep.
type Store struct {
	questions []domain.Question
	opts      flow.Options
	ttl       time.Duration
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewStore creates a store whose controllers share questions and opts.
func NewStore(questions []domain.Question, opts flow.Options, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		questions: questions,
		opts:      opts,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*entry),
	}
}

// Create starts a new session at the intro step.
func (s *Store) Create() (string, *flow.Controller) {
	id := uuid.NewString()
	ctrl := flow.New(s.questions, s.opts)

	s.mu.Lock()
	s.sessions[id] = &entry{ctrl: ctrl, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("session created", zap.String("session", id), zap.Int("active", n))
	return id, ctrl
}

// Get returns the controller for id and marks the session as seen.
func (s *Store) Get(id string) (*flow.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.ctrl, true
}

// Remove closes and forgets a session.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		e.ctrl.Close()
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes sessions idle for longer than the TTL and returns how many it removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*flow.Controller
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.ctrl)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, ctrl := range expired {
		ctrl.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("expired idle sessions", zap.Int("removed", len(expired)), zap.Int("active", s.Len()))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range sessions {
		e.ctrl.Close()
	}
	s.logger.Info("closed all sessions", zap.Int("count", len(sessions)))
}
