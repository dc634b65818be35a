package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/visibility/ingest"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_NoArgsRunsSelfTest(t *testing.T) {
	out, _, err := execute(t, "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(out, "PASS "), out)
	assert.NotContains(t, out, "FAIL")
}

func TestRoot_FileAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pair.csv"), []byte("src,dst\n1,2\n"), 0o600))
	metricsPath := filepath.Join(dir, "avv.prom")

	out, _, err := execute(t, filepath.Join(dir, "pair"), "--format", "csv", "--metrics-file", metricsPath)
	require.NoError(t, err)
	assert.Equal(t, "node,avv\n1,1.5\n2,1.5\n", out)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "avv_runs_total 1")
}

func TestRoot_ParseErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("src,dst\n1,two\n"), 0o600))

	_, _, err := execute(t, path)
	assert.ErrorIs(t, err, ingest.ErrBadNodeID)
}

func TestRoot_Rejections(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	assert.Error(t, err)

	_, _, err = execute(t, "--workers", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "--format", "xml")
	assert.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "avv version "), out)
}
