package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLog_AppendCreatesDayFile(t *testing.T) {
	dir := t.TempDir()
	l := NewSessionLog(dir)

	end := time.Date(2026, 8, 31, 10, 0, 31, 0, time.UTC)
	rec := SessionRecord{
		StartTime:       end.Add(-31 * time.Second),
		EndTime:         end,
		AppName:         "Code",
		Category:        "Work",
		DurationSeconds: 31,
	}
	require.NoError(t, l.Append(rec))

	data, err := os.ReadFile(filepath.Join(dir, "2026-08-31.json"))
	require.NoError(t, err)

	var got []SessionRecord
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Code", got[0].AppName)
	assert.Equal(t, "Work", got[0].Category)
	assert.InDelta(t, 31, got[0].DurationSeconds, 0.001)

	// RFC 3339 timestamps on the wire.
	assert.Contains(t, string(data), `"2026-08-31T10:00:31Z"`)
}

func TestSessionLog_AppendExtendsExisting(t *testing.T) {
	l := NewSessionLog(t.TempDir())
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	first := SessionRecord{StartTime: day, EndTime: day.Add(10 * time.Second), AppName: "Code", Category: "Work", DurationSeconds: 10}
	second := SessionRecord{StartTime: day.Add(10 * time.Second), EndTime: day.Add(25 * time.Second), AppName: "Steam", Category: "Gaming", DurationSeconds: 15}

	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	got, err := l.Day(day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Code", got[0].AppName)
	assert.Equal(t, "Steam", got[1].AppName)
}

func TestSessionLog_SplitsByCalendarDay(t *testing.T) {
	l := NewSessionLog(t.TempDir())

	mon := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	tue := time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)

	require.NoError(t, l.Append(SessionRecord{StartTime: mon.Add(-time.Minute), EndTime: mon, AppName: "a", Category: "Work", DurationSeconds: 60}))
	require.NoError(t, l.Append(SessionRecord{StartTime: mon, EndTime: tue, AppName: "b", Category: "Work", DurationSeconds: 120}))

	monRecs, err := l.Day(mon)
	require.NoError(t, err)
	tueRecs, err := l.Day(tue)
	require.NoError(t, err)

	assert.Len(t, monRecs, 1)
	assert.Len(t, tueRecs, 1)
}

func TestRecordFromSession(t *testing.T) {
	start := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := &domain.Session{
		AppLabel:  "Google Chrome | Inbox",
		Category:  domain.CategoryCommunication,
		StartedAt: start,
		EndedAt:   start.Add(90 * time.Second),
	}

	rec := RecordFromSession(s)

	assert.Equal(t, "Google Chrome | Inbox", rec.AppName)
	assert.Equal(t, "Communication", rec.Category)
	assert.InDelta(t, 90, rec.DurationSeconds, 0.001)
	assert.Equal(t, start, rec.StartTime)
}
