// Package histstore loads questionnaire histories from the data
// directory and persists evaluation snapshots to a database backend.
package histstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/schema"
)

// History file names inside the data directory. One JSON array per
// domain, written by the external survey collector.
const (
	remindersFile = "reminders_log.json"
	snapshotsFile = "risk_scores_history.json"
)

// FileSource reads histories from per-domain JSON files. All read
// failures degrade to empty histories: a missing file, malformed JSON,
// or a non-array top level mean "no data", never an error.
type FileSource struct {
	dir string
}

var _ contract.HistorySource = (*FileSource)(nil) // Compile-time check

// NewFileSource creates a history source over the given data directory.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// DomainHistory returns the history for a scored domain.
func (s *FileSource) DomainHistory(d schema.Domain) schema.History {
	return loadHistory(filepath.Join(s.dir, string(d)+"_user_input.json"))
}

// RemindersHistory returns the reminder completion log.
func (s *FileSource) RemindersHistory() schema.History {
	return loadHistory(filepath.Join(s.dir, remindersFile))
}

// SnapshotHistory returns previously recorded index snapshots.
func (s *FileSource) SnapshotHistory() schema.History {
	return loadHistory(filepath.Join(s.dir, snapshotsFile))
}

// loadHistory decodes one history file. Rows without a user_input
// object fall back to the row itself as the field mapping, which covers
// flat logs like the reminder file and recorded index snapshots.
func loadHistory(path string) schema.History {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil
	}

	out := make(schema.History, 0, len(rows))
	for _, row := range rows {
		ts, _ := row["timestamp"].(string)
		fields, ok := row["user_input"].(map[string]any)
		if !ok {
			fields = row
		}
		out = append(out, schema.Entry{Timestamp: ts, UserInput: schema.Fields(fields)})
	}
	return out
}

// MemorySource is a HistorySource backed by in-memory histories, used
// by tests and the MCP layer.
type MemorySource struct {
	Domains   map[schema.Domain]schema.History
	Reminders schema.History
	Snapshots schema.History
}

var _ contract.HistorySource = (*MemorySource)(nil) // Compile-time check

// DomainHistory returns the configured history for a domain.
func (s *MemorySource) DomainHistory(d schema.Domain) schema.History {
	return s.Domains[d]
}

// RemindersHistory returns the configured reminder log.
func (s *MemorySource) RemindersHistory() schema.History { return s.Reminders }

// SnapshotHistory returns the configured snapshot history.
func (s *MemorySource) SnapshotHistory() schema.History { return s.Snapshots }

// LoadAll reads every declared domain's history from the source.
func LoadAll(src contract.HistorySource) map[schema.Domain]schema.History {
	histories := make(map[schema.Domain]schema.History, len(schema.AllDomains))
	for _, d := range schema.AllDomains {
		histories[d] = src.DomainHistory(d)
	}
	return histories
}
