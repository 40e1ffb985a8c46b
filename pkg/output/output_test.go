package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/sizesweep/pkg/models"
)

func sampleScan() *models.ScanResult {
	return &models.ScanResult{
		Root:           "/data",
		ThresholdBytes: 100 * models.BytesPerMB,
		FilesSeen:      12,
		Duration:       1500 * time.Millisecond,
		Entries: []models.FileEntry{
			{Path: "/data/movie.mkv", Size: 300 * models.BytesPerMB},
			{Path: "/data/backup.zip", Size: 200 * models.BytesPerMB},
		},
		Skipped: []models.SkippedEntry{{Path: "/data/locked", Reason: "permission denied"}},
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{100 * models.BytesPerMB, "100.0 MiB"},
		{5 * 1024 * models.BytesPerMB, "5.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "/a/b.bin", truncateLeft("/a/b.bin", 20))
	assert.Equal(t, "…/b.bin", truncateLeft("/long/dir/b.bin", 7))
	assert.Equal(t, "…", truncateLeft("/long/dir/b.bin", 1))
}

func TestNew(t *testing.T) {
	f, err := New("human", Options{})
	require.NoError(t, err)
	assert.Equal(t, "human", f.Name())

	f, err = New("json", Options{})
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	_, err = New("xml", Options{})
	assert.True(t, models.IsValidationError(err))
}

// ============== Human Tests ==============

func TestHumanScan(t *testing.T) {
	var buf bytes.Buffer
	f := NewHumanFormatter(false, 0)

	require.NoError(t, f.Scan(&buf, ScanView{Result: sampleScan(), Stats: true}))
	out := buf.String()

	assert.Contains(t, out, "Scanned /data: 12 files, 2 at or above 100.0 MiB (1s)")
	assert.Contains(t, out, "300.0 MiB  /data/movie.mkv")
	assert.Contains(t, out, "Total: 2 files, 500.0 MiB")
	assert.Contains(t, out, "By category:")
	assert.Contains(t, out, "archive")
	assert.Contains(t, out, "Skipped 1 inaccessible entries:")
	assert.Contains(t, out, "/data/locked: permission denied")
	assert.Less(t, strings.Index(out, "movie.mkv"), strings.Index(out, "backup.zip"))
}

func TestHumanScanFiltered(t *testing.T) {
	var buf bytes.Buffer
	view := ScanView{
		Result: sampleScan(),
		Filtered: &models.FilterResult{
			Entries:    []models.FileEntry{{Path: "/data/movie.mkv", Size: 300 * models.BytesPerMB}},
			Unverified: []models.SkippedEntry{{Path: "/data/movie.mkv", Reason: "stat failed"}},
		},
	}

	require.NoError(t, NewHumanFormatter(false, 0).Scan(&buf, view))
	out := buf.String()

	assert.Contains(t, out, "Filter kept 1 of 2")
	assert.NotContains(t, out, "backup.zip")
	assert.Contains(t, out, "Kept without verification:")
}

func TestHumanScanEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &models.ScanResult{Root: "/empty", ThresholdBytes: models.BytesPerMB}

	require.NoError(t, NewHumanFormatter(false, 0).Scan(&buf, ScanView{Result: result}))
	assert.Contains(t, buf.String(), "No files found.")
}

func TestHumanValidationAndAudit(t *testing.T) {
	var buf bytes.Buffer
	f := NewHumanFormatter(false, 0)

	require.NoError(t, f.Validation(&buf, "/data", models.Valid()))
	require.NoError(t, f.Validation(&buf, "limit", models.Invalid("must be greater than 0")))
	require.NoError(t, f.Audit(&buf, 3, nil))
	require.NoError(t, f.Audit(&buf, 3, []models.ProblemEntry{{Path: "/x", Reason: "file does not exist"}}))

	out := buf.String()
	assert.Contains(t, out, "✓ /data: valid")
	assert.Contains(t, out, "✗ limit: must be greater than 0")
	assert.Contains(t, out, "✓ All 3 paths can be modified")
	assert.Contains(t, out, "1 of 3 paths cannot be modified:")
	assert.Contains(t, out, "✗ /x: file does not exist")
}

func TestHumanReport(t *testing.T) {
	t.Run("Partial", func(t *testing.T) {
		var buf bytes.Buffer
		report := &models.OperationReport{
			ID:          "op-1",
			Action:      models.ActionMove,
			Destination: "/archive",
			Stage:       models.StageExecute,
			Requested:   2,
			Succeeded:   1,
			Problems:    []models.ProblemEntry{{Path: "/b", Reason: "target already exists"}},
		}
		require.NoError(t, NewHumanFormatter(false, 0).Report(&buf, report))

		out := buf.String()
		assert.Contains(t, out, "✗ 1 of 2 files moved to /archive")
		assert.Contains(t, out, "/b: target already exists")
		assert.Contains(t, out, "Status: partial")
		assert.Contains(t, out, "Operation op-1")
	})

	t.Run("Refused", func(t *testing.T) {
		var buf bytes.Buffer
		report := &models.OperationReport{
			ID:        "op-2",
			Action:    models.ActionDelete,
			Stage:     models.StagePreflight,
			Requested: 2,
			Problems:  []models.ProblemEntry{{Path: "/a", Reason: "file does not exist"}},
		}
		require.NoError(t, NewHumanFormatter(false, 0).Report(&buf, report))
		assert.Contains(t, buf.String(), "delete refused: 1 problem(s) found, nothing was changed")
	})
}

func TestHumanColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHumanFormatter(true, 0).Validation(&buf, "/data", models.Valid()))
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, NewHumanFormatter(false, 0).Validation(&buf, "/data", models.Valid()))
	assert.NotContains(t, buf.String(), "\x1b[")
}

// ============== JSON Tests ==============

func TestJSONScan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Scan(&buf, ScanView{Result: sampleScan(), Stats: true}))

	var data JSONScanData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "/data", data.Root)
	assert.Equal(t, int64(500*models.BytesPerMB), data.TotalBytes)
	require.Len(t, data.Entries, 2)
	assert.Equal(t, "video", data.Entries[0].Category)
	assert.Len(t, data.Skipped, 1)
	assert.Len(t, data.Categories, 2)
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	report := &models.OperationReport{
		ID:        "op-3",
		Action:    models.ActionDelete,
		Stage:     models.StageExecute,
		Requested: 1,
		Succeeded: 1,
		Problems:  []models.ProblemEntry{},
	}
	require.NoError(t, NewJSONFormatter().Report(&buf, report))

	var data JSONReportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "op-3", data.ID)
	assert.Equal(t, "success", data.Status)
	assert.NotNil(t, data.Problems)
	assert.Empty(t, data.Problems)
}

func TestJSONAudit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Audit(&buf, 2, []models.ProblemEntry{{Path: "/x", Reason: "file is not writable"}}))

	var data JSONAuditData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.False(t, data.Safe)
	assert.Equal(t, 2, data.Total)
}

// ============== Indicator Tests ==============

func TestWithIndicator(t *testing.T) {
	var buf bytes.Buffer
	ran := false

	WithIndicator(&buf, false, "Scanning", func() { ran = true })
	assert.True(t, ran)
	assert.Empty(t, buf.String())

	WithIndicator(&buf, true, "Scanning", func() {})
	assert.Contains(t, buf.String(), "Scanning")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Zero(t, TerminalWidth(&bytes.Buffer{}))
}
