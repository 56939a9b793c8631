package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "expected help text on the output writer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_InvalidDocumentIsAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "Smakefile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`rule "broken" {`), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-f", path})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ReportsStaleness(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	source := filepath.Join(dir, "a.c")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0600))
	mtime := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(source, mtime, mtime))

	doc := fmt.Sprintf(`
rule "compile" {
  cmd = ["gcc -c a.c -o a.o"]
  in  = [%q]
  out = [%q]
}
`, source, filepath.Join(dir, "a.o"))
	path := filepath.Join(dir, "Smakefile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-f", path, "-verbose", "compile"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(needs update)")
	assert.Contains(t, out.String(), "nonexistent, needs update.")
}
