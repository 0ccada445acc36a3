package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const doc = `
facts:
  - pairs:
      - edge: "."
        value:
          kind: string
          s: a
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestRunReplayPrintsOneLinePerFact(t *testing.T) {
	logger = zap.NewNop()
	configPath = ""
	path := writeDoc(t)

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runReplay(cmd, []string{path}))
	assert.Contains(t, buf.String(), "[0] ok=true")
}

func TestRunStatsPrintsSummary(t *testing.T) {
	logger = zap.NewNop()
	configPath = ""
	path := writeDoc(t)

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runStats(cmd, []string{path}))
	assert.Contains(t, buf.String(), "nodes=")
}

func TestRunReplayMissingFileErrors(t *testing.T) {
	logger = zap.NewNop()
	configPath = ""
	cmd := &cobra.Command{}
	err := runReplay(cmd, []string{filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}
