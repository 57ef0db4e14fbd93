package engine

import (
	"encoding/csv"
	"strings"
	"time"
)

var exportHeader = []string{"id", "text", "category", "priority", "status", "created_at"}

// ExportCSV renders the non-deleted collection as RFC 4180 CSV with a
// fixed column order. Fields containing commas, quotes, or newlines are
// quoted by the writer, so every row parses back losslessly.
func (m *Manager) ExportCSV() (string, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return "", NewPersistenceError("failed to load thoughts", err)
	}
	if len(thoughts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(exportHeader); err != nil {
		return "", NewPersistenceError("failed to write export header", err)
	}
	for _, t := range thoughts {
		record := []string{
			t.ID,
			t.Text,
			string(t.Category),
			string(t.Priority),
			string(t.Status),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return "", NewPersistenceError("failed to write export row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", NewPersistenceError("failed to flush export", err)
	}

	return sb.String(), nil
}
