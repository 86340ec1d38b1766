package session

import (
	"sync"
	"time"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

// Sample is one per-turn telemetry point. Scores are clamped to the
// 0~100 scale before they get here.
type Sample struct {
	Timestamp  time.Time
	Anxiety    float64
	Depression float64
	Stress     float64
}

// Record accumulates per-session telemetry across turns.
type Record struct {
	CrisisCount int
	LastSummary string
	UpdatedAt   time.Time
	History     []Sample
}

// Store owns every session record and transcript. All mutation goes
// through RecordTurn; readers get copies or snapshots.
type Store struct {
	mu          sync.RWMutex
	now         func() time.Time
	records     map[string]*Record
	transcripts map[string][]chat.Message
}

// NewStore bootstraps the in-memory session store. State lives for the
// process lifetime only.
func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		records:     make(map[string]*Record),
		transcripts: make(map[string][]chat.Message),
	}
}

// Transcript returns a copy of the session's message history, empty for
// an unknown session.
func (s *Store) Transcript(sessionID string) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.transcripts[sessionID]
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied
}

// RecordTurn folds one completed turn into the session record: the crisis
// counter, the latest summary, one history sample and the new transcript
// messages, all under one lock acquisition so concurrent turns never see
// a half-applied fold.
func (s *Store) RecordTurn(st chat.TurnState, newMessages []chat.Message) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[st.SessionID]
	if !ok {
		record = &Record{}
		s.records[st.SessionID] = record
	}

	if st.Crisis {
		record.CrisisCount++
	}
	if st.Summary != "" {
		record.LastSummary = st.Summary
	}

	sample := Sample{Timestamp: now}
	if st.Scores != nil {
		sample.Anxiety = clampScore(st.Scores.Anxiety)
		sample.Depression = clampScore(st.Scores.Depression)
		sample.Stress = clampScore(st.Scores.Stress)
	}
	record.History = append(record.History, sample)
	record.UpdatedAt = now

	for _, msg := range newMessages {
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = now
		}
		s.transcripts[st.SessionID] = append(s.transcripts[st.SessionID], msg)
	}
}

// RecordSnapshot returns a copy of one session's record.
func (s *Store) RecordSnapshot(sessionID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[sessionID]
	if !ok {
		return Record{}, false
	}
	snap := *record
	snap.History = append([]Sample(nil), record.History...)
	return snap, true
}

// SessionCount reports how many sessions exist, for operator logging.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func clampScore(val float64) float64 {
	if val < 0 {
		return 0
	}
	if val > 100 {
		return 100
	}
	return val
}
