package core

import (
	"strings"

	"github.com/devlens/devlens/schema"
)

// Analyzer classifies commit messages for AI tool involvement. It holds
// only immutable pattern tables and is safe for concurrent use.
type Analyzer struct {
	tools      []schema.ToolPattern
	bots       []schema.BotPattern
	heuristics []schema.MessageHeuristic
}

// NewAnalyzer returns an Analyzer wired with the default pattern tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		tools:      schema.ToolPatterns,
		bots:       schema.BotPatterns,
		heuristics: schema.MessageHeuristics,
	}
}

// AnalyzeCommits scans a commit sequence for AI signals: direct tool
// mentions, bot co-authors, message-shape heuristics and burst patterns.
// Empty input yields a zero-valued result with low confidence. Malformed
// timestamps never fail the call; they simply contribute nothing to the
// burst score.
func (a *Analyzer) AnalyzeCommits(commits []schema.Commit) *schema.CommitAnalysisResult {
	result := &schema.CommitAnalysisResult{
		TotalCommitsAnalyzed: len(commits),
		AIToolMentions:       schema.NewCountByName(),
		CoAuthorBots:         schema.NewCountByName(),
		AIConfidence:         schema.LowConfidence,
	}
	if len(commits) == 0 {
		return result
	}

	seen := make(map[schema.CoAuthor]struct{})
	for _, commit := range commits {
		hasSignal := false

		for _, tp := range a.tools {
			if tp.Pattern.MatchString(commit.Message) {
				result.AIToolMentions.Add(tp.Tool)
				hasSignal = true
			}
		}

		for _, bp := range a.bots {
			if bp.Pattern.MatchString(commit.Message) {
				result.CoAuthorBots.Add(bp.Bot)
				hasSignal = true
			}
		}

		for _, ca := range extractCoAuthors(commit.Message) {
			if _, ok := seen[ca]; !ok {
				seen[ca] = struct{}{}
				result.CoAuthors = append(result.CoAuthors, ca)
			}
		}

		result.AIHeuristicScore += a.applyHeuristics(commit.Message)

		if hasSignal {
			result.CommitsWithAISignals++
		}
	}

	// Normalize the accumulated heuristic weights to a 0-100 scale.
	result.AIHeuristicScore = min(result.AIHeuristicScore/float64(len(commits))*100, 100.0)

	result.BurstScore = detectBurstPatterns(commits)
	result.AIConfidence = determineConfidence(result)

	return result
}

// extractCoAuthors parses every Co-authored-by trailer, bot or human.
func extractCoAuthors(message string) []schema.CoAuthor {
	matches := schema.CoAuthorRegex.FindAllStringSubmatch(message, -1)
	authors := make([]schema.CoAuthor, 0, len(matches))
	for _, m := range matches {
		authors = append(authors, schema.CoAuthor{
			Name:  strings.TrimSpace(m[1]),
			Email: strings.TrimSpace(m[2]),
		})
	}
	return authors
}

// applyHeuristics sums the heuristic weights matching a message, capped at 1.0.
func (a *Analyzer) applyHeuristics(message string) float64 {
	score := 0.0
	for _, h := range a.heuristics {
		if h.Pattern.MatchString(message) {
			score += h.Weight
		}
	}
	return min(score, 1.0)
}

// determineConfidence picks the confidence tier, first match wins:
// high for direct tool mentions or bot co-authors, medium for strong
// heuristic/burst signals, low otherwise.
func determineConfidence(result *schema.CommitAnalysisResult) schema.Confidence {
	if result.AIToolMentions.Len() > 0 || result.CoAuthorBots.Len() > 0 {
		return schema.HighConfidence
	}

	if result.TotalCommitsAnalyzed > 0 {
		signalRatio := float64(result.CommitsWithAISignals) / float64(result.TotalCommitsAnalyzed)
		if signalRatio > 0.3 {
			return schema.MediumConfidence
		}
		if result.AIHeuristicScore > 30 {
			return schema.MediumConfidence
		}
		if result.BurstScore > 0.5 {
			return schema.MediumConfidence
		}
	}

	return schema.LowConfidence
}
