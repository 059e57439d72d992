package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "internal", "parser", "testdata", name))
	require.NoError(t, err)
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("WOLLOK_CONFIG", "")
	t.Setenv("WOLLOK_NO_COLOR", "")

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParsesFileAsTree(t *testing.T) {
	path := testdata(t, "pepita.wlk")

	code, out, errOut := runCLI(t, path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Wollok AST Scope")
	assert.Contains(t, out, "object pepita")
	assert.Contains(t, out, "Successfully parsed "+path)
	assert.NotContains(t, out, "\x1b[")
}

func TestSourceFormatAndTokens(t *testing.T) {
	code, out, _ := runCLI(t, "--format", "source", "--tokens", testdata(t, "pepita.wlk"))
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "Wollok AST Scope")
	assert.Contains(t, out, "keyword 'object'@")
	assert.Contains(t, out, "object pepita {")
}

func TestReportsDiagnostic(t *testing.T) {
	code, out, errOut := runCLI(t, testdata(t, "broken.wlk"))
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error[E0101]")
	assert.Contains(t, errOut, "broken.wlk:6:3")
	assert.Contains(t, errOut, "Parsing failed after")
}

func TestMissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, filepath.Join(t.TempDir(), "nope.wlk"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to read file")
}

func TestUsageAndBadFlags(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage: wollok")

	code, _, errOut = runCLI(t, "--format", "xml", testdata(t, "pepita.wlk"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid output format")
}

func TestExplain(t *testing.T) {
	code, out, _ := runCLI(t, "--explain", "E0102")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "E0102")
	assert.Contains(t, out, "Input ended before the construct was complete")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.5ms", formatDuration(2500*time.Microsecond))
	assert.Equal(t, "12ns", formatDuration(12))
	assert.Equal(t, "2.00min", formatDuration(2*time.Minute))
}
