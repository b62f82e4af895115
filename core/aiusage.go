package core

import (
	"sort"
	"strings"

	"github.com/devlens/devlens/schema"
)

// maxReportedCoAuthors caps the co-author list in the AI-usage summary.
const maxReportedCoAuthors = 10

// metadataOnlyNote explains reduced confidence when commits were unavailable.
const metadataOnlyNote = "Based on public repository metadata. Commit analysis available with GitHub token."

// analyzeAIUsage summarizes AI tooling adoption: usage bucket, detected
// tool names and confidence. With commit analysis available the summary
// carries commit-level detail at the analyzer's confidence; without it the
// summary is an estimate from repo metadata alone.
func (e *Engine) analyzeAIUsage(profile *schema.Profile, aiScore int, analysis *schema.CommitAnalysisResult) schema.AIAnalysis {
	out := schema.AIAnalysis{
		OverallBucket: schema.BucketFor(aiScore),
		AIScore:       aiScore,
	}

	toolSet := make(map[string]struct{})
	for _, repo := range profile.Repos {
		for _, topic := range repo.Topics {
			lower := strings.ToLower(topic)
			for _, kw := range schema.TopicToolKeywords {
				if strings.Contains(lower, kw.Keyword) {
					toolSet[kw.Tool] = struct{}{}
				}
			}
		}
	}

	if analysis != nil {
		for _, tool := range analysis.AIToolMentions.Names() {
			toolSet[tool] = struct{}{}
		}
		out.Confidence = analysis.AIConfidence

		coAuthors := analysis.CoAuthors
		if len(coAuthors) > maxReportedCoAuthors {
			coAuthors = coAuthors[:maxReportedCoAuthors]
		}
		out.CommitAnalysis = &schema.CommitAnalysisDetail{
			CommitsAnalyzed: analysis.TotalCommitsAnalyzed,
			AISignalsFound:  analysis.CommitsWithAISignals,
			AIPercentage:    analysis.AIPercentage(),
			CoAuthorBots:    analysis.CoAuthorBots,
			CoAuthors:       coAuthors,
			BurstScore:      analysis.BurstScore,
		}
	} else {
		out.Confidence = schema.EstimatedConfidence
		out.Note = metadataOnlyNote
	}

	out.DetectedTools = make([]string, 0, len(toolSet))
	for tool := range toolSet {
		out.DetectedTools = append(out.DetectedTools, tool)
	}
	sort.Strings(out.DetectedTools)

	return out
}
