package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
}

func TestScanDatesKeepsDateDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "2021-01-01", "2021-01-02", "scratch")

	dates, err := ScanDates(root, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2021-01-01", "2021-01-02"}, dates)
}

func TestScanDatesIgnoresFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "2021-01-01")
	require.NoError(t, os.WriteFile(filepath.Join(root, "2021-01-02"), []byte("not a dir"), 0o644))

	dates, err := ScanDates(root, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2021-01-01"}, dates)
}

func TestScanDatesAllowList(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "2021-01-01", "2021-01-02", "2021-01-03")

	dates, err := ScanDates(root, []string{"2021-01-02", "2021-01-05"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2021-01-02"}, dates)
}

func TestScanDatesExcludesCataloged(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "2021-01-01", "2021-01-02")

	dates, err := ScanDates(root, nil, map[string]bool{"2021-01-01": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"2021-01-02"}, dates)

	// all dates cataloged: nothing left to do
	dates, err = ScanDates(root, nil, map[string]bool{"2021-01-01": true, "2021-01-02": true})
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestScanDatesMissingRawPath(t *testing.T) {
	_, err := ScanDates(filepath.Join(t.TempDir(), "nope"), nil, nil)
	require.Error(t, err)
}
