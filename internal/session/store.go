// Package session holds per-browser render state: the transactions pager,
// the last rendered lists and totals, and the advisor chat.
// Nothing is persisted; a restart starts every browser from scratch.
package session

import (
	"sync"
	"time"

	"github.com/dafibh/finai/finai-web/internal/advisor"
	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTTL is how long an idle session is kept
	DefaultTTL = 30 * time.Minute
	// CleanupInterval is the interval for evicting idle sessions
	CleanupInterval = time.Minute
)

// Session is the render state of one browser
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	pager    domain.PagerState
	totals   *view.TotalsView
	goals    []view.GoalCard
	bills    view.BillsView
	learning []view.LearningCard
	chat     *advisor.Chat
	lastSeen time.Time
}

func newSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:       id,
		pager:    domain.NewPagerState(),
		chat:     advisor.NewChat(),
		lastSeen: now,
	}
}

// Pager returns the transactions pager state
func (s *Session) Pager() domain.PagerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager
}

// SetPager stores the pager state confirmed by the last page load
func (s *Session) SetPager(p domain.PagerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager = p
}

// Totals returns the last rendered dashboard totals, nil before the first render
func (s *Session) Totals() *view.TotalsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// SetTotals replaces the rendered totals. A nil value keeps the previous ones.
func (s *Session) SetTotals(t *view.TotalsView) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = t
}

// Goals returns the last rendered goal cards
func (s *Session) Goals() []view.GoalCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals
}

// SetGoals replaces the rendered goal cards
func (s *Session) SetGoals(cards []view.GoalCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = cards
}

// Bills returns the last rendered bill buckets
func (s *Session) Bills() view.BillsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bills
}

// SetBills replaces the rendered bill buckets
func (s *Session) SetBills(b view.BillsView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = b
}

// Learning returns the last rendered learning cards
func (s *Session) Learning() []view.LearningCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.learning
}

// SetLearning replaces the rendered learning cards
func (s *Session) SetLearning(cards []view.LearningCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.learning = cards
}

// Chat returns the advisor chat of this browser
func (s *Session) Chat() *advisor.Chat {
	return s.chat
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store keeps sessions in memory and evicts idle ones
type Store struct {
	sessions map[uuid.UUID]*Session
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewStore creates a Store and starts its eviction loop
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Get returns a live session and marks it as seen
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Create starts a new session with a random id
func (s *Store) Create() *Session {
	sess := newSession(uuid.New(), s.now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Debug().Str("session_id", sess.ID.String()).Msg("Session created")
	return sess
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sweep evicts sessions idle longer than the TTL and returns how many went
func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			evicted++
			log.Debug().Str("session_id", id.String()).Msg("Evicted idle session")
		}
	}
	return evicted
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the eviction loop. Safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
