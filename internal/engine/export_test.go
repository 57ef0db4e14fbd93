package engine

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVEmptyStore(t *testing.T) {
	m := newTestManager(t)

	out, err := m.ExportCSV()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportCSVRoundTrip(t *testing.T) {
	m := newTestManager(t)

	tricky := `Buy milk, eggs and "fancy" cheese
before the weekend`
	created, err := m.Create(tricky, nil, nil)
	require.NoError(t, err)

	out, err := m.ExportCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"id", "text", "category", "priority", "status", "created_at"}, records[0])

	row := records[1]
	assert.Equal(t, created.ID, row[0])
	assert.Equal(t, created.Text, row[1])
	assert.Equal(t, string(created.Category), row[2])
	assert.Equal(t, string(created.Priority), row[3])
	assert.Equal(t, string(created.Status), row[4])

	parsed, err := time.Parse(time.RFC3339, row[5])
	require.NoError(t, err)
	assert.WithinDuration(t, created.CreatedAt, parsed, time.Second)
}

func TestExportCSVSkipsSoftDeleted(t *testing.T) {
	m := newTestManager(t)

	kept, err := m.Create("Water the plants", nil, nil)
	require.NoError(t, err)
	gone, err := m.Create("Rotate the tires", nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.SoftDelete(gone.ID))

	out, err := m.ExportCSV()
	require.NoError(t, err)

	assert.Contains(t, out, kept.ID)
	assert.NotContains(t, out, gone.ID)
}
