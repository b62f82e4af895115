package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitAnalysisFixture() *schema.CommitAnalysisResult {
	mentions := schema.NewCountByName()
	mentions.Add("claude")
	mentions.Add("copilot")
	mentions.Add("claude")

	bots := schema.NewCountByName()
	bots.Add("dependabot")

	return &schema.CommitAnalysisResult{
		TotalCommitsAnalyzed: 40,
		AIToolMentions:       mentions,
		CoAuthorBots:         bots,
		CoAuthors: []schema.CoAuthor{
			{Name: "Ada Lovelace", Email: "ada@example.com"},
		},
		AIHeuristicScore:     35.0,
		BurstScore:           0.3,
		AIConfidence:         schema.MediumConfidence,
		CommitsWithAISignals: 10,
	}
}

func TestWriteCommitAnalysisText(t *testing.T) {
	var buf bytes.Buffer
	err := writeCommitAnalysisText(&buf, commitAnalysisFixture(), 10*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Commits analyzed: 40")
	assert.Contains(t, out, "Commits with AI signals: 10 (25.0%)")
	assert.Contains(t, out, "Heuristic score: 35.0")
	assert.Contains(t, out, "Burst score: 0.30")
	assert.Contains(t, out, "Confidence: medium")
	assert.Contains(t, out, "claude")
	assert.Contains(t, out, "dependabot")
	assert.Contains(t, out, "Ada Lovelace <ada@example.com>")
}

func TestWriteCommitAnalysisTextEmptySections(t *testing.T) {
	result := &schema.CommitAnalysisResult{
		TotalCommitsAnalyzed: 5,
		AIToolMentions:       schema.NewCountByName(),
		CoAuthorBots:         schema.NewCountByName(),
		AIConfidence:         schema.LowConfidence,
	}

	var buf bytes.Buffer
	err := writeCommitAnalysisText(&buf, result, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "AI tool mentions:")
	assert.NotContains(t, out, "Bot co-authors:")
	assert.NotContains(t, out, "Human co-authors:")
}

func TestWriteCSVCommitAnalysis(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVCommitAnalysis(w, commitAnalysisFixture())
	require.NoError(t, err)
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"kind", "name", "count"}, records[0])
	assert.Equal(t, []string{"tool", "claude", "2"}, records[1])
	assert.Equal(t, []string{"tool", "copilot", "1"}, records[2])
	assert.Equal(t, []string{"bot", "dependabot", "1"}, records[3])
}

func TestWriteJSONCommitAnalysis(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONCommitAnalysis(&buf, commitAnalysisFixture())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, float64(40), decoded["total_commits_analyzed"])
	assert.Equal(t, float64(25.0), decoded["ai_percentage"])
	assert.Equal(t, []any{"claude", "copilot"}, decoded["detected_tools"])

	mentions, ok := decoded["ai_tool_mentions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), mentions["claude"])
}

func TestWriteCommitAnalysisResultParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := WriteCommitAnalysisResult(commitAnalysisFixture(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
