package domain

import "time"

// Session is a maximal contiguous interval during which the observed
// activity's (identity, category) pair is stable. Exactly one session is open
// at any time after the first observation; a session is dropped from memory
// once its closed record has been appended to the session log.
type Session struct {
	ID        string
	AppLabel  string
	Category  Category
	Identity  ActivityIdentity
	StartedAt time.Time
	EndedAt   time.Time // zero while the session is open
}

// Open reports whether the session has not been closed yet.
func (s *Session) Open() bool {
	return s.EndedAt.IsZero()
}

// LiveDuration is the elapsed time of an open session as of now.
func (s *Session) LiveDuration(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// Duration is the total length of a closed session.
func (s *Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
