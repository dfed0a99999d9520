package memory

import (
	"sync"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// Session is the per-operator state surviving between actions: the most
// recently produced batch with its source JSON, and the last report. Each
// writer fully replaces its slice of the session; nothing here outlives the
// process.
type Session struct {
	Batch      model.OrderBatch
	JSON       string
	Sizes      model.SizeSummary
	Summary    string
	Report     *model.PerformanceReport
	ReportText string
	UpdatedAt  time.Time
}

// Store holds sessions keyed by operator ID.
type Store interface {
	Get(operatorID int64) Session
	ReplaceBatch(operatorID int64, batch model.OrderBatch, jsonText string, sizes model.SizeSummary, summary string)
	ReplaceReport(operatorID int64, report model.PerformanceReport, text string)
}

// SessionStore is the in-memory Store implementation.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
	now      func() time.Time
}

// NewSessionStore constructs an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[int64]Session{},
		now:      time.Now,
	}
}

// Get returns a copy of the operator's session, zero-valued when absent.
func (s *SessionStore) Get(operatorID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[operatorID]
}

// ReplaceBatch swaps the held batch and its derived values. The last report
// is kept: generating a report later is a separate action.
func (s *SessionStore) ReplaceBatch(operatorID int64, batch model.OrderBatch, jsonText string, sizes model.SizeSummary, summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[operatorID]
	session.Batch = batch
	session.JSON = jsonText
	session.Sizes = sizes
	session.Summary = summary
	session.UpdatedAt = s.now()
	s.sessions[operatorID] = session
}

// ReplaceReport swaps the held report, leaving the batch untouched.
func (s *SessionStore) ReplaceReport(operatorID int64, report model.PerformanceReport, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[operatorID]
	session.Report = &report
	session.ReportText = text
	session.UpdatedAt = s.now()
	s.sessions[operatorID] = session
}
