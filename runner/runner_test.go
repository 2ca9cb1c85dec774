package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_PrintsExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`var x = 10; var y = 20; print x + y;`, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "30\n", buf.String())
}

func TestRun_ScannerErrorFails(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`"unterminated`, &buf)
	assert.Error(t, err)
}

func TestRun_ParserErrorFails(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`var x = 1`, &buf)
	assert.Error(t, err)
}

func TestRun_RuntimeErrorFails(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`print undeclared;`, &buf)
	assert.Error(t, err)
}

func TestRunFile_ReadsAndExecutes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ownpy")
	assert.NoError(t, os.WriteFile(path, []byte(`print "hello from a file";`), 0o644))

	var buf bytes.Buffer
	err := RunFile(path, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "hello from a file\n", buf.String())
}

func TestRunFile_MissingFileFails(t *testing.T) {
	var buf bytes.Buffer
	err := RunFile(filepath.Join(t.TempDir(), "missing.ownpy"), &buf)
	assert.Error(t, err)
}
