package histstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workwellhq/workwell/schema"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// TestFileSourceDomainHistory checks history loading from the data directory.
func TestFileSourceDomainHistory(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "msk_user_input.json", `[
		{"timestamp": "2026-08-20T09:00:00", "user_input": {"pain_level": 6}},
		{"timestamp": "2026-08-21T09:00:00", "user_input": {"pain_level": 8}}
	]`)
	src := NewFileSource(dir)

	h := src.DomainHistory(schema.DomainMSK)
	assert.Len(t, h, 2)
	assert.Equal(t, "2026-08-20T09:00:00", h[0].Timestamp)
	assert.InDelta(t, 6.0, h[0].UserInput["pain_level"].(float64), 0.001)
}

// TestFileSourceDegradesToEmpty checks that read failures mean "no data".
func TestFileSourceDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "eye_user_input.json", `{"not": "an array"}`)
	writeDataFile(t, dir, "hydration_user_input.json", `not json at all`)
	src := NewFileSource(dir)

	assert.Empty(t, src.DomainHistory(schema.DomainMSK)) // file missing
	assert.Empty(t, src.DomainHistory(schema.DomainEye))
	assert.Empty(t, src.DomainHistory(schema.DomainHydration))
}

// TestFileSourceFlatRows checks the fallback for logs without a
// user_input object.
func TestFileSourceFlatRows(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "reminders_log.json", `[
		{"timestamp": "2026-08-25T10:00:00", "completed": true}
	]`)
	writeDataFile(t, dir, "risk_scores_history.json", `[
		{"timestamp": "2026-08-25T18:00:00", "workday_health_index": 62.5}
	]`)
	src := NewFileSource(dir)

	reminders := src.RemindersHistory()
	assert.Len(t, reminders, 1)
	assert.Equal(t, true, reminders[0].UserInput["completed"])

	snapshots := src.SnapshotHistory()
	assert.Len(t, snapshots, 1)
	assert.InDelta(t, 62.5, snapshots[0].UserInput["workday_health_index"].(float64), 0.001)
}

// TestLoadAll checks that every declared domain gets a history slot.
func TestLoadAll(t *testing.T) {
	src := &MemorySource{
		Domains: map[schema.Domain]schema.History{
			schema.DomainMSK: {{Timestamp: "2026-08-25"}},
		},
	}

	histories := LoadAll(src)
	assert.Len(t, histories, len(schema.AllDomains))
	assert.Len(t, histories[schema.DomainMSK], 1)
	assert.Empty(t, histories[schema.DomainEye])
}
