package core

import "rtutor/pkg/schema"

// SessionState is the in-memory conversation state carried between Execute
// calls of one session.
type SessionState struct {
	SessionID string
	Turns     []schema.Turn
}

// NewSessionState creates a session state for a session id.
func NewSessionState(sessionID string) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		Turns:     make([]schema.Turn, 0),
	}
}

// Replace swaps in the turns from a terminal state record, keeping the
// chronological order the pipeline maintained.
func (s *SessionState) Replace(turns []schema.Turn) {
	s.Turns = make([]schema.Turn, len(turns))
	copy(s.Turns, turns)
}

// Clone creates a deep copy of the session state.
func (s *SessionState) Clone() *SessionState {
	clone := &SessionState{
		SessionID: s.SessionID,
		Turns:     make([]schema.Turn, len(s.Turns)),
	}
	copy(clone.Turns, s.Turns)
	return clone
}
