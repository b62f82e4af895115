package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringFixture() *schema.ScoringResult {
	return &schema.ScoringResult{
		Scores: map[schema.Dimension]int{
			schema.ActivityDim:       85,
			schema.CollaborationDim:  62,
			schema.StackDiversityDim: 47,
			schema.AISavvinessDim:    23,
		},
		Archetype: schema.ArchetypeResult{
			ID:          "open_source_maintainer",
			Name:        "Open Source Maintainer",
			Description: "High collaboration, high activity, community-focused developer",
			Confidence:  0.85,
			Alternatives: []schema.AlternativeArchetype{
				{ID: "full_stack_polyglot", Name: "Full-Stack Polyglot", Score: 58.2},
			},
		},
		AIAnalysis: schema.AIAnalysis{
			OverallBucket: schema.LightBucket,
			DetectedTools: []string{"claude", "copilot"},
			Confidence:    schema.MediumConfidence,
			AIScore:       23,
			CommitAnalysis: &schema.CommitAnalysisDetail{
				CommitsAnalyzed: 50,
				AISignalsFound:  8,
				AIPercentage:    16.0,
				BurstScore:      0.25,
			},
		},
		TechProfile: schema.TechProfile{
			Languages:        []string{"Go", "TypeScript"},
			Frameworks:       []string{"react", "docker"},
			PrimaryEcosystem: "full-stack",
			TopRepos: []schema.RepoSummary{
				{Name: "widget", Language: "Go", Stars: 120, Description: "A widget service"},
			},
		},
	}
}

func scoreConfig() *contract.Config {
	return &contract.Config{
		Username:     "octocat",
		Precision:    1,
		Width:        120,
		CacheBackend: schema.SQLiteBackend,
	}
}

func TestWriteScoreText(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoreText(&buf, scoringFixture(), scoreConfig(), 42*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Developer profile: octocat")
	assert.Contains(t, out, "Activity")
	assert.Contains(t, out, "85")
	assert.Contains(t, out, contract.ExpertValue)
	assert.Contains(t, out, "Open Source Maintainer")
	assert.Contains(t, out, "85% confidence")
	assert.Contains(t, out, "Runner-up: Full-Stack Polyglot (58.2)")
	assert.Contains(t, out, "Light (10-30%)")
	assert.Contains(t, out, "claude, copilot")
	assert.Contains(t, out, "Commits analyzed: 50")
	assert.Contains(t, out, "Primary ecosystem: full-stack")
	assert.Contains(t, out, "widget")
	assert.Contains(t, out, "Cache backend: sqlite")
}

func TestWriteScoreTextWithoutCommitDetail(t *testing.T) {
	result := scoringFixture()
	result.AIAnalysis.CommitAnalysis = nil
	result.AIAnalysis.Note = "Based on public repository metadata. Commit analysis available with GitHub token."

	var buf bytes.Buffer
	err := writeScoreText(&buf, result, scoreConfig(), time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Commits analyzed:")
	assert.Contains(t, out, "Note: Based on public repository metadata")
}

func TestWriteCSVScoreResult(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVScoreResult(w, scoringFixture(), "octocat")
	require.NoError(t, err)
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "Header plus one row per dimension")

	assert.Equal(t, "username", records[0][0])
	assert.Equal(t, []string{
		"octocat", "activity", "85", "Expert",
		"open_source_maintainer", "0.85", "10_30", "medium", "full-stack",
	}, records[1])
	assert.Equal(t, "ai_savviness", records[4][1])
	assert.Equal(t, "Emerging", records[4][3])
}

func TestWriteJSONScoreResult(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONScoreResult(&buf, scoringFixture(), "octocat")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "octocat", decoded["username"])

	labels, ok := decoded["labels"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Expert", labels["activity"])
	assert.Equal(t, "Emerging", labels["ai_savviness"])

	scores, ok := decoded["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(85), scores["activity"])
}

func TestWriteScoreResultDispatch(t *testing.T) {
	t.Run("json to file", func(t *testing.T) {
		cfg := scoreConfig()
		cfg.Output = schema.JSONOut
		cfg.OutputFile = filepath.Join(t.TempDir(), "score.json")

		require.NoError(t, WriteScoreResult(scoringFixture(), cfg, time.Millisecond))
		assert.FileExists(t, cfg.OutputFile)
	})

	t.Run("parquet to file", func(t *testing.T) {
		cfg := scoreConfig()
		cfg.Output = schema.ParquetOut
		cfg.OutputFile = filepath.Join(t.TempDir(), "score.parquet")

		require.NoError(t, WriteScoreResult(scoringFixture(), cfg, time.Millisecond))
		assert.FileExists(t, cfg.OutputFile)
	})

	t.Run("parquet without file errors", func(t *testing.T) {
		cfg := scoreConfig()
		cfg.Output = schema.ParquetOut

		err := WriteScoreResult(scoringFixture(), cfg, time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output-file")
	})
}
