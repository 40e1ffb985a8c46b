package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============== Category Tests ==============

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		path     string
		expected FileCategory
	}{
		{"/v/a.mp4", CategoryVideo},
		{"/v/a.MP4", CategoryVideo},
		{"/v/clip.WebM", CategoryVideo},
		{"/i/photo.JPEG", CategoryImage},
		{"/i/icon.svg", CategoryImage},
		{"/d/report.pdf", CategoryDocument},
		{"/d/sheet.XLSX", CategoryDocument},
		{"/a/bundle.tar.gz", CategoryArchive},
		{"/a/pack.7z", CategoryArchive},
		{"/o/binary.iso", CategoryOther},
		{"/o/README", CategoryOther},
		{"/o/.mp4", CategoryOther},
		{"/o/.hidden.mkv", CategoryVideo},
		{"/o/trailing.", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryOf(tt.path))
		})
	}
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory(" Video ")
	require.NoError(t, err)
	assert.Equal(t, CategoryVideo, category)

	_, err = ParseCategory("music")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	entries := []FileEntry{
		{Path: "a.mkv", Size: 100},
		{Path: "b.zip", Size: 300},
		{Path: "c.mp4", Size: 50},
		{Path: "d.bin", Size: 10},
	}

	summary := Summarize(entries)
	require.Len(t, summary, 3)
	assert.Equal(t, CategoryStats{Category: CategoryArchive, Count: 1, Bytes: 300}, summary[0])
	assert.Equal(t, CategoryStats{Category: CategoryVideo, Count: 2, Bytes: 150}, summary[1])
	assert.Equal(t, CategoryStats{Category: CategoryOther, Count: 1, Bytes: 10}, summary[2])

	assert.Empty(t, Summarize(nil))
}

// ============== Validation Tests ==============

func TestValidationOutcome(t *testing.T) {
	assert.NoError(t, Valid().Err("root"))

	err := Invalid("path is empty").Err("root")
	require.Error(t, err)
	assert.Equal(t, "root: path is empty", err.Error())
	assert.True(t, IsValidationError(err))
}

func TestMBToBytes(t *testing.T) {
	assert.Equal(t, int64(104857600), MBToBytes(100))
	assert.Equal(t, int64(524288), MBToBytes(0.5))
}

func TestFilterSpecIsZero(t *testing.T) {
	assert.True(t, FilterSpec{}.IsZero())
	assert.True(t, FilterSpec{FileTypes: []FileCategory{}}.IsZero())
	assert.False(t, FilterSpec{IncludeHidden: true}.IsZero())
	assert.False(t, FilterSpec{MaxSizeMB: 10}.IsZero())
	assert.False(t, FilterSpec{DaysOld: 1}.IsZero())
	assert.False(t, FilterSpec{FileTypes: []FileCategory{CategoryVideo}}.IsZero())
}

// ============== Report Tests ==============

func TestOperationReportStatus(t *testing.T) {
	problem := []ProblemEntry{{Path: "/x", Reason: "boom"}}

	tests := []struct {
		name   string
		report OperationReport
		status Status
		exit   int
	}{
		{"Success", OperationReport{Stage: StageExecute, Requested: 2, Succeeded: 2}, StatusSuccess, 0},
		{"Partial", OperationReport{Stage: StageExecute, Requested: 2, Succeeded: 1, Problems: problem}, StatusPartial, 1},
		{"Failed", OperationReport{Stage: StageExecute, Requested: 1, Problems: problem}, StatusFailed, 2},
		{"Refused", OperationReport{Stage: StagePreflight, Requested: 2, Problems: problem}, StatusRefused, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.report.Status())
			assert.Equal(t, tt.exit, tt.report.Status().ExitCode())
		})
	}
}

func TestScanResultHelpers(t *testing.T) {
	result := &ScanResult{Entries: []FileEntry{{Path: "/a", Size: 3}, {Path: "/b", Size: 4}}}
	assert.Equal(t, int64(7), result.TotalBytes())
	assert.Equal(t, []string{"/a", "/b"}, result.Paths())
}
