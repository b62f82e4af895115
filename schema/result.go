package schema

import "math"

// ResultVersion identifies the result schema for cache compatibility.
// Bump when the scoring algorithm or result shape changes.
const ResultVersion = 2

// CoAuthor is an identity parsed from a Co-authored-by trailer.
type CoAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommitAnalysisResult is the output of the commit signal analyzer.
// Immutable once returned.
type CommitAnalysisResult struct {
	TotalCommitsAnalyzed int          `json:"total_commits_analyzed"`
	AIToolMentions       *CountByName `json:"ai_tool_mentions"`
	CoAuthorBots         *CountByName `json:"co_author_bots"`
	CoAuthors            []CoAuthor   `json:"co_authors"`
	AIHeuristicScore     float64      `json:"ai_heuristic_score"`
	BurstScore           float64      `json:"burst_score"`
	AIConfidence         Confidence   `json:"ai_confidence"`
	CommitsWithAISignals int          `json:"commits_with_ai_signals"`
}

// AIPercentage returns the share of analyzed commits carrying AI signals,
// rounded to one decimal place.
func (r *CommitAnalysisResult) AIPercentage() float64 {
	if r.TotalCommitsAnalyzed == 0 {
		return 0.0
	}
	pct := float64(r.CommitsWithAISignals) / float64(r.TotalCommitsAnalyzed) * 100
	return math.Round(pct*10) / 10
}

// DetectedTools returns the mentioned tool names, sorted.
func (r *CommitAnalysisResult) DetectedTools() []string {
	return r.AIToolMentions.SortedNames()
}

// AlternativeArchetype is a runner-up classification candidate.
type AlternativeArchetype struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ArchetypeResult is the classification outcome.
type ArchetypeResult struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Confidence   float64                `json:"confidence"`
	Alternatives []AlternativeArchetype `json:"alternatives"`
}

// CommitAnalysisDetail is the commit-level evidence attached to the
// AI-usage summary when commit data was supplied.
type CommitAnalysisDetail struct {
	CommitsAnalyzed int          `json:"commits_analyzed"`
	AISignalsFound  int          `json:"ai_signals_found"`
	AIPercentage    float64      `json:"ai_percentage"`
	CoAuthorBots    *CountByName `json:"co_author_bots"`
	CoAuthors       []CoAuthor   `json:"co_authors"`
	BurstScore      float64      `json:"burst_score"`
}

// AIAnalysis summarizes estimated AI tool usage.
type AIAnalysis struct {
	OverallBucket  Bucket                `json:"overall_bucket"`
	DetectedTools  []string              `json:"detected_tools"`
	Confidence     Confidence            `json:"confidence"`
	AIScore        int                   `json:"ai_score"`
	CommitAnalysis *CommitAnalysisDetail `json:"commit_analysis,omitempty"`
	Note           string                `json:"note,omitempty"`
}

// RepoSummary is a condensed repository entry for the tech profile.
type RepoSummary struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
}

// TechProfile condenses the stack for downstream consumers.
type TechProfile struct {
	Languages        []string      `json:"languages"`
	Frameworks       []string      `json:"frameworks"`
	TopRepos         []RepoSummary `json:"top_repos"`
	PrimaryEcosystem string        `json:"primary_ecosystem"`
}

// ScoringResult is the final output of one scoring invocation.
type ScoringResult struct {
	Scores      map[Dimension]int `json:"scores"`
	Archetype   ArchetypeResult   `json:"archetype"`
	AIAnalysis  AIAnalysis        `json:"ai_analysis"`
	TechProfile TechProfile       `json:"tech_profile"`
}
