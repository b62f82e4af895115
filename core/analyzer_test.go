package core

import (
	"testing"

	"github.com/devlens/devlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeCommitsEmpty ensures empty input yields a zero result.
func TestAnalyzeCommitsEmpty(t *testing.T) {
	result := NewAnalyzer().AnalyzeCommits(nil)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.TotalCommitsAnalyzed)
	assert.Equal(t, 0, result.AIToolMentions.Len())
	assert.Equal(t, 0, result.CoAuthorBots.Len())
	assert.Empty(t, result.CoAuthors)
	assert.Zero(t, result.AIHeuristicScore)
	assert.Zero(t, result.BurstScore)
	assert.Equal(t, schema.LowConfidence, result.AIConfidence)
}

// TestAnalyzeCommitsToolMentions covers direct tool signature matching.
func TestAnalyzeCommitsToolMentions(t *testing.T) {
	tests := []struct {
		name    string
		message string
		tool    string
	}{
		{"copilot", "Add login form (generated with Copilot)", "GitHub Copilot"},
		{"chatgpt", "Fix parser per ChatGPT suggestion", "ChatGPT/OpenAI"},
		{"gpt-4o", "Refactor with gpt-4o assistance", "ChatGPT/OpenAI"},
		{"claude", "Claude helped restructure the cache", "Claude/Anthropic"},
		{"cursor", "Applied Cursor autocompletion", "Cursor"},
		{"aider", "aider: refactor session handling", "Aider"},
		{"generic assisted", "AI-assisted cleanup of handlers", "AI-Assisted (generic)"},
		{"generated by ai", "Docs generated by AI", "AI-Generated (generic)"},
		{"llm", "Tune LLM prompt templates", "LLM (generic)"},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.AnalyzeCommits([]schema.Commit{{Message: tt.message}})
			assert.Equal(t, 1, result.AIToolMentions.Count(tt.tool))
			assert.Equal(t, 1, result.CommitsWithAISignals)
			assert.Equal(t, schema.HighConfidence, result.AIConfidence)
		})
	}
}

// TestAnalyzeCommitsNoFalsePositives ensures plain messages stay clean.
func TestAnalyzeCommitsNoFalsePositives(t *testing.T) {
	commits := []schema.Commit{
		{Message: "Fix off-by-one in pagination"},
		{Message: "Bump dependency versions"},
		{Message: "Merge branch 'release/1.2'"},
	}

	result := NewAnalyzer().AnalyzeCommits(commits)

	assert.Equal(t, 0, result.AIToolMentions.Len())
	assert.Equal(t, 0, result.CoAuthorBots.Len())
	assert.Equal(t, 0, result.CommitsWithAISignals)
	assert.Equal(t, schema.LowConfidence, result.AIConfidence)
}

// TestAnalyzeCommitsBotCoAuthors covers bot trailer detection and the
// generic [bot] fallback double-counting alongside specific bots.
func TestAnalyzeCommitsBotCoAuthors(t *testing.T) {
	commits := []schema.Commit{
		{Message: "Bump deps\n\nCo-authored-by: dependabot[bot] <support@github.com>"},
		{Message: "Pair work\n\nCo-authored-by: copilot <copilot@github.com>"},
	}

	result := NewAnalyzer().AnalyzeCommits(commits)

	assert.Equal(t, 1, result.CoAuthorBots.Count("Dependabot"))
	assert.Equal(t, 1, result.CoAuthorBots.Count("Bot"))
	assert.Equal(t, 1, result.CoAuthorBots.Count("GitHub Copilot"))
	assert.Equal(t, 2, result.CommitsWithAISignals)
	assert.Equal(t, schema.HighConfidence, result.AIConfidence)
}

// TestExtractCoAuthors covers trailer parsing and deduplication.
func TestExtractCoAuthors(t *testing.T) {
	t.Run("single trailer", func(t *testing.T) {
		authors := extractCoAuthors("Fix bug\n\nCo-authored-by: Jane Doe <jane@example.com>")
		require.Len(t, authors, 1)
		assert.Equal(t, schema.CoAuthor{Name: "Jane Doe", Email: "jane@example.com"}, authors[0])
	})

	t.Run("case insensitive", func(t *testing.T) {
		authors := extractCoAuthors("x\n\nCO-AUTHORED-BY: Sam <sam@example.com>")
		require.Len(t, authors, 1)
		assert.Equal(t, "Sam", authors[0].Name)
	})

	t.Run("deduplicated across commits", func(t *testing.T) {
		msg := "work\n\nCo-authored-by: Jane Doe <jane@example.com>"
		result := NewAnalyzer().AnalyzeCommits([]schema.Commit{{Message: msg}, {Message: msg}})
		assert.Len(t, result.CoAuthors, 1)
	})
}

// TestApplyHeuristics exercises each message-shape heuristic.
func TestApplyHeuristics(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"generic action", "Update readme", 0.1},
		{"implement prefix", "Implement caching layer for repo metadata", 0.1},
		{"article prefix", "This commit adds the new retry logic to the fetcher", 0.2},
		{"detailed conventional", "feat(a-very-long-and-descriptive-scope-name): add things", 0.05},
		{"plain message", "Fix flaky websocket test", 0.0},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.applyHeuristics(tt.message), 0.001)
		})
	}
}

// TestApplyHeuristicsCap ensures stacked heuristics cap at 1.0 per message.
func TestApplyHeuristicsCap(t *testing.T) {
	a := &Analyzer{heuristics: []schema.MessageHeuristic{
		{Pattern: schema.MessageHeuristics[0].Pattern, Weight: 0.7},
		{Pattern: schema.MessageHeuristics[0].Pattern, Weight: 0.7},
	}}
	assert.InDelta(t, 1.0, a.applyHeuristics("Update readme"), 0.001)
}

// TestHeuristicScoreNormalization checks the 0-100 normalization across
// the whole commit set.
func TestHeuristicScoreNormalization(t *testing.T) {
	commits := []schema.Commit{
		{Message: "Update readme"}, // 0.1
		{Message: "Fix flaky websocket test"},
	}

	result := NewAnalyzer().AnalyzeCommits(commits)

	// (0.1 + 0.0) / 2 * 100 = 5.0
	assert.InDelta(t, 5.0, result.AIHeuristicScore, 0.001)
}

// TestDetermineConfidence covers the tier ladder.
func TestDetermineConfidence(t *testing.T) {
	tests := []struct {
		name   string
		result *schema.CommitAnalysisResult
		want   schema.Confidence
	}{
		{
			name: "heuristic score above threshold",
			result: &schema.CommitAnalysisResult{
				TotalCommitsAnalyzed: 10,
				AIToolMentions:       schema.NewCountByName(),
				CoAuthorBots:         schema.NewCountByName(),
				AIHeuristicScore:     35,
			},
			want: schema.MediumConfidence,
		},
		{
			name: "burst score above threshold",
			result: &schema.CommitAnalysisResult{
				TotalCommitsAnalyzed: 10,
				AIToolMentions:       schema.NewCountByName(),
				CoAuthorBots:         schema.NewCountByName(),
				BurstScore:           0.6,
			},
			want: schema.MediumConfidence,
		},
		{
			name: "signal ratio above threshold",
			result: &schema.CommitAnalysisResult{
				TotalCommitsAnalyzed: 10,
				CommitsWithAISignals: 4,
				AIToolMentions:       schema.NewCountByName(),
				CoAuthorBots:         schema.NewCountByName(),
			},
			want: schema.MediumConfidence,
		},
		{
			name: "nothing notable",
			result: &schema.CommitAnalysisResult{
				TotalCommitsAnalyzed: 10,
				AIToolMentions:       schema.NewCountByName(),
				CoAuthorBots:         schema.NewCountByName(),
			},
			want: schema.LowConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineConfidence(tt.result))
		})
	}
}

// TestAIPercentage checks rounding of the signal share.
func TestAIPercentage(t *testing.T) {
	r := &schema.CommitAnalysisResult{TotalCommitsAnalyzed: 3, CommitsWithAISignals: 1}
	assert.InDelta(t, 33.3, r.AIPercentage(), 0.001)

	empty := &schema.CommitAnalysisResult{}
	assert.Zero(t, empty.AIPercentage())
}

// BenchmarkAnalyzeCommits benchmarks the full analysis pipeline.
func BenchmarkAnalyzeCommits(b *testing.B) {
	commits := make([]schema.Commit, 50)
	for i := range commits {
		commits[i] = schema.Commit{
			Message:       "Refactor request handling for streaming responses",
			CommittedDate: "2025-06-01T10:00:00Z",
			ChangedFiles:  3,
		}
	}
	a := NewAnalyzer()

	for b.Loop() {
		a.AnalyzeCommits(commits)
	}
}
