package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// SessionRecord is one closed session as persisted in the daily log file.
// Timestamps marshal as RFC 3339.
type SessionRecord struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	AppName         string    `json:"app_name"`
	Category        string    `json:"category"`
	DurationSeconds float64   `json:"duration_seconds"`
}

// RecordFromSession builds the persisted record for a closed session.
func RecordFromSession(s *domain.Session) SessionRecord {
	return SessionRecord{
		StartTime:       s.StartedAt,
		EndTime:         s.EndedAt,
		AppName:         s.AppLabel,
		Category:        s.Category.String(),
		DurationSeconds: s.Duration().Seconds(),
	}
}

// SessionLog is the append-only session history, stored as one JSON array
// per calendar day under dir. The day file is chosen by the session's end
// time, so a session spanning midnight lands in the day it closed.
type SessionLog struct {
	dir string
}

// NewSessionLog creates a session log rooted at dir.
func NewSessionLog(dir string) *SessionLog {
	return &SessionLog{dir: dir}
}

// Append adds one record to its day file. Appending reads the existing
// array, extends it and rewrites the file.
func (l *SessionLog) Append(rec SessionRecord) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	path := l.dayPath(rec.EndTime)
	records, err := readDay(path)
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session log: %w", err)
	}
	return nil
}

// Day returns all records logged for the given date.
func (l *SessionLog) Day(day time.Time) ([]SessionRecord, error) {
	return readDay(l.dayPath(day))
}

func (l *SessionLog) dayPath(day time.Time) string {
	return filepath.Join(l.dir, day.Format("2006-01-02")+".json")
}

func readDay(path string) ([]SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session log: %w", err)
	}

	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding session log: %w", err)
	}
	return records, nil
}
