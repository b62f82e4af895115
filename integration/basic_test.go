//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScoreFromInputFile scores a local profile without network or cache.
func TestScoreFromInputFile(t *testing.T) {
	profilePath := writeFixtureProfile(t)

	out, err := runDevlensCommand(t, "score", "--input-file", profilePath, "--cache-backend", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Developer profile: octocat")
	assert.Contains(t, out, "Archetype:")
}

// TestScoreJSONOutput checks the machine-readable output path.
func TestScoreJSONOutput(t *testing.T) {
	profilePath := writeFixtureProfile(t)

	out, err := runDevlensCommand(t, "score", "--input-file", profilePath, "--cache-backend", "none", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"scores"`)
	assert.Contains(t, out, `"archetype"`)
}

// TestCommitsFromFile analyzes commit messages from a local file.
func TestCommitsFromFile(t *testing.T) {
	commits := `[
  {"message": "feat: add parser\n\nCo-authored-by: Claude <noreply@anthropic.com>", "committed_date": "2025-06-01T10:00:00Z"},
  {"message": "fix typo", "committed_date": "2025-06-01T11:00:00Z"}
]`
	path := filepath.Join(t.TempDir(), "commits.json")
	require.NoError(t, os.WriteFile(path, []byte(commits), 0o644))

	out, err := runDevlensCommand(t, "commits", "--commits-file", path, "--cache-backend", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzed")
}

// TestArchetypesListing prints the archetype catalog.
func TestArchetypesListing(t *testing.T) {
	out, err := runDevlensCommand(t, "archetypes", "--cache-backend", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "code_explorer")
}

// TestVersionOutput prints build information.
func TestVersionOutput(t *testing.T) {
	out, err := runDevlensCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "devlens CLI")
}
