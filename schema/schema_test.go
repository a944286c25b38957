package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEntryTime tests timestamp parsing across the collector's formats.
func TestEntryTime(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		parses    bool
	}{
		{
			name:      "rfc3339",
			timestamp: "2026-08-20T09:30:00Z",
			parses:    true,
		},
		{
			name:      "zoneless isoformat with micros",
			timestamp: "2026-08-20T09:30:00.123456",
			parses:    true,
		},
		{
			name:      "zoneless isoformat",
			timestamp: "2026-08-20T09:30:00",
			parses:    true,
		},
		{
			name:      "date only",
			timestamp: "2026-08-20",
			parses:    true,
		},
		{
			name:      "padded",
			timestamp: "  2026-08-20  ",
			parses:    true,
		},
		{
			name:      "empty",
			timestamp: "",
			parses:    false,
		},
		{
			name:      "garbage",
			timestamp: "yesterday-ish",
			parses:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Timestamp: tt.timestamp}
			parsed, ok := e.Time()
			assert.Equal(t, tt.parses, ok)
			if tt.parses {
				assert.Equal(t, 2026, parsed.Year())
				assert.Equal(t, time.August, parsed.Month())
			}
		})
	}
}

// TestHistoryTail checks tail slicing bounds.
func TestHistoryTail(t *testing.T) {
	h := History{
		{Timestamp: "2026-08-01"},
		{Timestamp: "2026-08-02"},
		{Timestamp: "2026-08-03"},
	}

	assert.Len(t, h.Tail(2), 2)
	assert.Equal(t, "2026-08-02", h.Tail(2)[0].Timestamp)
	assert.Len(t, h.Tail(10), 3)
	assert.Nil(t, h.Tail(0))
	assert.Nil(t, History(nil).Tail(3))
}

// TestHistoryLatest checks the newest-entry accessor.
func TestHistoryLatest(t *testing.T) {
	h := History{
		{Timestamp: "2026-08-01"},
		{Timestamp: "2026-08-02"},
	}

	latest, ok := h.Latest()
	assert.True(t, ok)
	assert.Equal(t, "2026-08-02", latest.Timestamp)

	_, ok = History(nil).Latest()
	assert.False(t, ok)
}

// TestHistoryBetween checks the half-open window filter.
func TestHistoryBetween(t *testing.T) {
	h := History{
		{Timestamp: "2026-08-01T00:00:00Z"},
		{Timestamp: "2026-08-05T00:00:00Z"},
		{Timestamp: "2026-08-10T00:00:00Z"},
		{Timestamp: "garbage"},
	}
	start := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	// Start is inclusive, end is exclusive, unparseable entries skipped.
	window := h.Between(start, end)
	assert.Len(t, window, 1)
	assert.Equal(t, "2026-08-05T00:00:00Z", window[0].Timestamp)
}

// TestRounding checks the presentation rounding helpers.
func TestRounding(t *testing.T) {
	assert.InDelta(t, 70.8, Round1(70.8333), 0.0001)
	assert.InDelta(t, 70.9, Round1(70.85), 0.0001)
	assert.InDelta(t, 2.67, Round2(2.6666), 0.0001)
	assert.InDelta(t, -6.0, Round1(-5.96), 0.0001)
}
