package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *RecordStore {
	t.Helper()
	s, err := NewRecordStore(filepath.Join(t.TempDir(), "models.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveGetRecord(t *testing.T) {
	s := openTestStore(t)

	rec := Record{
		Object: "wooden chair",
		Script: "import bpy",
		Model:  "claude-sonnet-4-5-20250514",
		RunID:  "run-1",
	}
	require.NoError(t, s.SaveRecord(rec))

	got, err := s.GetRecord("wooden chair")
	require.NoError(t, err)
	assert.Equal(t, "import bpy", got.Script)
	assert.Equal(t, "run-1", got.RunID)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = s.GetRecord("no such object")
	assert.Error(t, err)
}

func TestSaveRecordReplaces(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveRecord(Record{Object: "chair", Script: "v1"}))
	require.NoError(t, s.SaveRecord(Record{Object: "chair", Script: "v2"}))

	got, err := s.GetRecord("chair")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Script)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHasRecord(t *testing.T) {
	s := openTestStore(t)

	ok, err := s.HasRecord("chair")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveRecord(Record{Object: "chair", Script: "import bpy"}))
	ok, err = s.HasRecord("chair")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListRecordsOrdered(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveRecord(Record{Object: "table", Script: "t"}))
	require.NoError(t, s.SaveRecord(Record{Object: "chair", Script: "c"}))

	records, err := s.ListRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "chair", records[0].Object)
	assert.Equal(t, "table", records[1].Object)
}

func TestExportScripts(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveRecord(Record{Object: "wooden chair", Script: "import bpy"}))

	dir := filepath.Join(t.TempDir(), "export")
	n, err := s.ExportScripts(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(filepath.Join(dir, "wooden_chair_code.py"))
	require.NoError(t, err)
	assert.Equal(t, "import bpy", string(data))
}
