package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/sizesweep/pkg/config"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/output"
)

const mb = models.BytesPerMB

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command tree against an isolated default configuration
func execute(t *testing.T, args ...string) cmdResult {
	t.Helper()
	return executeWithConfig(t, config.Default(), args...)
}

// executeWithConfig runs the command tree against an isolated copy of cfg
func executeWithConfig(t *testing.T, cfg *config.Config, args ...string) cmdResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveToFile(cfg, cfgPath))

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))

	err := root.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func sparseFile(t *testing.T, path string, size int64) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
	return path
}

func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	sparseFile(t, filepath.Join(root, "movie.mkv"), 5*mb)
	sparseFile(t, filepath.Join(root, "nested", "backup.zip"), 3*mb)
	sparseFile(t, filepath.Join(root, "notes.txt"), 1024)
	return root
}

// ============== Scan Tests ==============

func TestScanJSON(t *testing.T) {
	root := fixtureTree(t)

	res := execute(t, "scan", root, "--limit", "2", "-o", "json", "--stats")
	require.NoError(t, res.err)

	var data output.JSONScanData
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &data))
	require.Len(t, data.Entries, 2)
	assert.Equal(t, filepath.Join(root, "movie.mkv"), data.Entries[0].Path)
	assert.Equal(t, filepath.Join(root, "nested", "backup.zip"), data.Entries[1].Path)
	assert.Len(t, data.Categories, 2)
}

func TestScanWithFilter(t *testing.T) {
	root := fixtureTree(t)

	res := execute(t, "scan", root, "--limit", "2", "--type", "archive")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Filter kept 1 of 2")
	assert.Contains(t, res.stdout, "backup.zip")
	assert.NotContains(t, res.stdout, "movie.mkv")
}

func TestScanFilterActivation(t *testing.T) {
	root := fixtureTree(t)
	sparseFile(t, filepath.Join(root, ".cache.bin"), 4*mb)

	t.Run("NoRules", func(t *testing.T) {
		res := execute(t, "scan", root, "--limit", "2")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, ".cache.bin")
		assert.NotContains(t, res.stdout, "Filter kept")
	})

	t.Run("EmptyPresetList", func(t *testing.T) {
		cfg := config.Default()
		cfg.Filter.FileTypes = []models.FileCategory{}
		res := executeWithConfig(t, cfg, "scan", root, "--limit", "2")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, ".cache.bin")
		assert.NotContains(t, res.stdout, "Filter kept")
	})

	t.Run("PresetRule", func(t *testing.T) {
		cfg := config.Default()
		cfg.Filter.MaxSizeMB = 100
		res := executeWithConfig(t, cfg, "scan", root, "--limit", "2")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Filter kept 2 of 3")
		assert.NotContains(t, res.stdout, ".cache.bin")
	})
}

func TestScanInvalidInput(t *testing.T) {
	root := fixtureTree(t)

	tests := []struct {
		name string
		args []string
	}{
		{"MissingRoot", []string{"scan", filepath.Join(root, "absent")}},
		{"FileRoot", []string{"scan", filepath.Join(root, "notes.txt")}},
		{"ZeroLimit", []string{"scan", root, "--limit", "0"}},
		{"TextLimit", []string{"scan", root, "--limit", "abc"}},
		{"UnknownType", []string{"scan", root, "--type", "music"}},
		{"NegativeMaxSize", []string{"scan", root, "--max-size", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			require.Error(t, res.err)
			assert.True(t, models.IsValidationError(res.err))
			assert.Equal(t, 2, ExitCode(res.err))
		})
	}
}

// ============== Delete Tests ==============

func TestDeleteRequiresConfirmation(t *testing.T) {
	root := fixtureTree(t)
	target := filepath.Join(root, "movie.mkv")

	res := execute(t, "delete", target)
	assert.True(t, errors.Is(res.err, errConfirmationRequired))
	assert.FileExists(t, target)
}

func TestDeleteExplicitPaths(t *testing.T) {
	root := fixtureTree(t)
	target := filepath.Join(root, "movie.mkv")

	res := execute(t, "delete", target, target, "--yes")
	require.NoError(t, res.err)
	assert.NoFileExists(t, target)
	assert.Contains(t, res.stdout, "1 of 1 files deleted")
}

func TestDeleteFromScan(t *testing.T) {
	root := fixtureTree(t)

	t.Run("RequiresAll", func(t *testing.T) {
		res := execute(t, "delete", "--from-scan", root, "--limit", "2", "--yes")
		assert.True(t, models.IsValidationError(res.err))
		assert.FileExists(t, filepath.Join(root, "movie.mkv"))
	})

	t.Run("FilteredSelection", func(t *testing.T) {
		res := execute(t, "delete", "--from-scan", root, "--limit", "2", "--type", "video", "--all", "--yes")
		require.NoError(t, res.err)
		assert.NoFileExists(t, filepath.Join(root, "movie.mkv"))
		assert.FileExists(t, filepath.Join(root, "nested", "backup.zip"))
	})
}

func TestDeleteRefusedWhenPathMissing(t *testing.T) {
	root := fixtureTree(t)
	present := filepath.Join(root, "movie.mkv")
	missing := filepath.Join(root, "gone.bin")

	res := execute(t, "delete", present, missing, "--yes", "-o", "json")
	assert.Equal(t, 2, ExitCode(res.err))
	assert.FileExists(t, present)

	var data output.JSONReportData
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &data))
	assert.Equal(t, "refused", data.Status)
	require.Len(t, data.Problems, 1)
	assert.Equal(t, missing, data.Problems[0].Path)
}

func TestDeleteNothingSelected(t *testing.T) {
	res := execute(t, "delete", "--yes")
	assert.True(t, models.IsValidationError(res.err))
}

func TestBlankSelectionPath(t *testing.T) {
	root := fixtureTree(t)
	present := filepath.Join(root, "movie.mkv")

	for _, args := range [][]string{
		{"delete", present, "  ", "--yes"},
		{"audit", present, ""},
		{"move", "", "--to", t.TempDir(), "--yes"},
	} {
		t.Run(args[0], func(t *testing.T) {
			res := execute(t, args...)
			assert.True(t, models.IsValidationError(res.err))
			assert.Equal(t, 2, ExitCode(res.err))
			assert.FileExists(t, present)
		})
	}
}

// ============== Move Tests ==============

func TestMove(t *testing.T) {
	root := fixtureTree(t)
	dest := t.TempDir()
	source := filepath.Join(root, "movie.mkv")

	res := execute(t, "move", source, "--to", dest, "--yes")
	require.NoError(t, res.err)
	assert.NoFileExists(t, source)
	assert.FileExists(t, filepath.Join(dest, "movie.mkv"))
}

func TestMoveMissingDestination(t *testing.T) {
	root := fixtureTree(t)
	source := filepath.Join(root, "movie.mkv")
	dest := filepath.Join(root, "archive")

	res := execute(t, "move", source, "--to", dest, "--yes")
	assert.Equal(t, 2, ExitCode(res.err))
	assert.Contains(t, res.stdout, dest)
	assert.FileExists(t, source)
}

func TestMoveCollisionIsPartial(t *testing.T) {
	root := fixtureTree(t)
	dest := t.TempDir()
	sparseFile(t, filepath.Join(dest, "movie.mkv"), 1)
	movie := filepath.Join(root, "movie.mkv")
	backup := filepath.Join(root, "nested", "backup.zip")

	res := execute(t, "move", movie, backup, "--to", dest, "--yes")
	assert.Equal(t, 1, ExitCode(res.err))
	assert.FileExists(t, movie)
	assert.FileExists(t, filepath.Join(dest, "backup.zip"))
	assert.Contains(t, res.stdout, "Status: partial")
}

// ============== Audit / Validate Tests ==============

func TestAudit(t *testing.T) {
	root := fixtureTree(t)
	present := filepath.Join(root, "movie.mkv")

	res := execute(t, "audit", present)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "All 1 paths can be modified")

	res = execute(t, "audit", present, filepath.Join(root, "gone.bin"))
	assert.Equal(t, 1, ExitCode(res.err))
	assert.Contains(t, res.stdout, "file does not exist")
}

func TestValidateCommands(t *testing.T) {
	root := t.TempDir()

	res := execute(t, "validate", "path", root)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "valid")

	res = execute(t, "validate", "limit", "10001")
	assert.Equal(t, 2, ExitCode(res.err))
	assert.Contains(t, res.stdout, "must not exceed 10000 MB")

	res = execute(t, "validate", "limit", "250")
	require.NoError(t, res.err)
}

// ============== Config / Version Tests ==============

func TestConfigInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "sizesweep.yaml")

	run := func(args ...string) error {
		root := NewRootCommand()
		root.SetArgs(append([]string{"--config", path}, args...))
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		return root.Execute()
	}

	require.NoError(t, run("config", "init"))
	assert.FileExists(t, path)

	assert.Error(t, run("config", "init"))
	assert.NoError(t, run("config", "init", "--force"))
}

func TestConfigShow(t *testing.T) {
	res := execute(t, "config", "show", "-o", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "limit_mb: 100")
	assert.Contains(t, res.stdout, "format: json")
}

func TestVersion(t *testing.T) {
	res := execute(t, "version", "--short")
	require.NoError(t, res.err)
	assert.Equal(t, Version+"\n", res.stdout)
}

// ============== Helper Tests ==============

func TestReadConfirmation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yeah\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			ok, err := readConfirmation(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(&models.ValidationError{Field: "root", Message: "path is empty"}))
	assert.Equal(t, 1, ExitCode(&ExitError{Code: 1}))
	assert.True(t, IsReported(&ExitError{Code: 2}))
	assert.False(t, IsReported(errors.New("boom")))
}
